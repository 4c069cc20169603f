package store

import "context"

// Users returns all accounts.
func (s *Store) Users(ctx context.Context) ([]User, error) {
	users := []User{}
	if err := s.read(ctx, keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User returns the account with the given username.
func (s *Store) User(ctx context.Context, username string) (User, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// ValidateUser reports whether username exists with the given password.
// Passwords are compared in plaintext; this is a demo credential check, not
// an authentication boundary.
func (s *Store) ValidateUser(ctx context.Context, username, password string) (bool, error) {
	u, err := s.User(ctx, username)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Password == password, nil
}

// UpdateUser shallow-merges the non-nil fields of up onto the matching
// account.
func (s *Store) UpdateUser(ctx context.Context, username string, up UserUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateUser(ctx, username, up)
}

func (s *Store) updateUser(ctx context.Context, username string, up UserUpdate) error {
	users, err := s.Users(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Username != username {
			continue
		}
		u := &users[i]
		if up.Password != nil {
			u.Password = *up.Password
		}
		if up.Company != nil {
			u.Company = *up.Company
		}
		if up.Contact != nil {
			u.Contact = *up.Contact
		}
		if up.Preferences != nil {
			u.Preferences = *up.Preferences
		}
		if up.LastLogin != nil {
			u.LastLogin = up.LastLogin
		}
		if up.IsActive != nil {
			u.IsActive = *up.IsActive
		}
		return s.write(ctx, keyUsers, users)
	}
	return ErrNotFound
}

// ChangePassword replaces a user's password after verifying the old one.
// On a mismatch nothing is written.
func (s *Store) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.ValidateUser(ctx, username, oldPassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBadCredentials
	}
	return s.updateUser(ctx, username, UserUpdate{Password: &newPassword})
}
