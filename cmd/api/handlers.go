package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"bkstore/pkg/export"
	"bkstore/pkg/logger"
	"bkstore/pkg/store"
)

type ctxKey int

const userKey ctxKey = 0

const sessionTTL = time.Hour

func contextWithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// username returns the session user set by authMiddleware.
func username(r *http.Request) string {
	u, _ := r.Context().Value(userKey).(string)
	return u
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeStoreError maps the store's sentinel errors onto HTTP statuses.
// Anything else is a storage failure and surfaces as a 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, store.ErrInvalidOrder):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, store.ErrNotConvertible):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, store.ErrDuplicateID):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, store.ErrBadCredentials):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		logger.Log.Error(op, zap.Error(err))
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
	}
}

// loginRequest represents login credentials.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginHandler handles user login and session creation.
// @Summary Login
// @Description Validates credentials, stamps last login and sets a session cookie
// @Accept json
// @Produce json
// @Param creds body loginRequest true "Credentials"
// @Success 200 {object} store.User
// @Router /login [post]
func loginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "invalid credentials", http.StatusBadRequest)
		return
	}
	ok, err := st.ValidateUser(r.Context(), req.Username, req.Password)
	if err != nil {
		writeStoreError(w, r, "validate user", err)
		return
	}
	if !ok {
		http.Error(w, "invalid username or password", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	if err := st.UpdateUser(r.Context(), req.Username, store.UserUpdate{LastLogin: &now}); err != nil {
		writeStoreError(w, r, "stamp last login", err)
		return
	}
	user, err := st.User(r.Context(), req.Username)
	if err != nil {
		writeStoreError(w, r, "load user", err)
		return
	}

	sid := uuid.NewString()
	if err := redisClient.Set(r.Context(), "session:"+sid, req.Username, sessionTTL).Err(); err != nil {
		logger.Log.Error("store session", zap.Error(err))
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "session_id", Value: sid, Path: "/", Expires: now.Add(sessionTTL), HttpOnly: true})

	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}

// logoutHandler ends the current session.
// @Summary Logout
// @Success 204
// @Router /logout [post]
func logoutHandler(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("session_id"); err == nil {
		redisClient.Del(r.Context(), "session:"+c.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: "session_id", Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	w.WriteHeader(http.StatusNoContent)
}

// authMiddleware ensures a valid session exists.
func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session_id")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := redisClient.Get(r.Context(), "session:"+c.Value).Result()
		if err != nil || user == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := contextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// listProductsHandler lists, searches or filters the catalog.
// @Summary List products
// @Produce json
// @Param q query string false "Substring search over name, category, description"
// @Param category query string false "Exact category filter"
// @Success 200 {array} store.Product
// @Router /products [get]
func listProductsHandler(w http.ResponseWriter, r *http.Request) {
	var (
		products []store.Product
		err      error
	)
	switch {
	case r.URL.Query().Get("q") != "":
		products, err = st.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	case r.URL.Query().Get("category") != "":
		products, err = st.ProductsByCategory(r.Context(), r.URL.Query().Get("category"))
	default:
		products, err = st.Products(r.Context())
	}
	if err != nil {
		writeStoreError(w, r, "list products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// getProductHandler retrieves one product.
// @Summary Get product
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} store.Product
// @Router /products/{id} [get]
func getProductHandler(w http.ResponseWriter, r *http.Request) {
	p, err := st.Product(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, r, "get product", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// addProductHandler adds a catalog entry.
// @Summary Add product
// @Accept json
// @Produce json
// @Param product body store.Product true "Product"
// @Success 201 {object} store.Product
// @Router /products [post]
func addProductHandler(w http.ResponseWriter, r *http.Request) {
	var p store.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := st.AddProduct(r.Context(), p); err != nil {
		writeStoreError(w, r, "add product", err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// getCartHandler returns the cart contents.
// @Summary Get cart
// @Produce json
// @Success 200 {array} store.OrderItem
// @Router /cart [get]
func getCartHandler(w http.ResponseWriter, r *http.Request) {
	cart, err := st.Cart(r.Context())
	if err != nil {
		writeStoreError(w, r, "get cart", err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

type addToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

// addToCartHandler adds a product to the cart.
// @Summary Add to cart
// @Accept json
// @Produce json
// @Param item body addToCartRequest true "Item"
// @Success 200 {array} store.OrderItem
// @Router /cart [post]
func addToCartHandler(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		http.Error(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}
	if err := st.AddToCart(r.Context(), req.ProductID, req.Quantity, req.Notes); err != nil {
		writeStoreError(w, r, "add to cart", err)
		return
	}
	cart, err := st.Cart(r.Context())
	if err != nil {
		writeStoreError(w, r, "get cart", err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// removeFromCartHandler removes one product from the cart.
// @Summary Remove from cart
// @Param productId path string true "Product ID"
// @Success 204
// @Router /cart/{productId} [delete]
func removeFromCartHandler(w http.ResponseWriter, r *http.Request) {
	if err := st.RemoveFromCart(r.Context(), mux.Vars(r)["productId"]); err != nil {
		writeStoreError(w, r, "remove from cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// clearCartHandler empties the cart.
// @Summary Clear cart
// @Success 204
// @Router /cart [delete]
func clearCartHandler(w http.ResponseWriter, r *http.Request) {
	if err := st.ClearCart(r.Context()); err != nil {
		writeStoreError(w, r, "clear cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listOrdersHandler lists the session user's orders.
// @Summary List orders
// @Produce json
// @Success 200 {array} store.Order
// @Router /orders [get]
func listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := st.OrdersByUser(r.Context(), username(r))
	if err != nil {
		writeStoreError(w, r, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

type createOrderRequest struct {
	Notes string `json:"notes"`
}

// createOrderHandler submits the cart as a purchase order. The customer
// info is a snapshot of the session user's contact at submission time, and
// the cart is cleared once the order persists.
// @Summary Submit order
// @Accept json
// @Produce json
// @Param order body createOrderRequest true "Order notes"
// @Success 201 {object} store.Order
// @Router /orders [post]
func createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cart, err := st.Cart(r.Context())
	if err != nil {
		writeStoreError(w, r, "get cart", err)
		return
	}
	if len(cart) == 0 {
		http.Error(w, "cart is empty", http.StatusConflict)
		return
	}
	user, err := st.User(r.Context(), username(r))
	if err != nil {
		writeStoreError(w, r, "load user", err)
		return
	}

	order, err := st.CreateOrder(r.Context(), store.OrderInput{
		CustomerID:   user.Username,
		Type:         store.TypePO,
		Status:       store.StatusPending,
		Items:        cart,
		CustomerInfo: user.Contact,
		Notes:        req.Notes,
	})
	if err != nil {
		writeStoreError(w, r, "create order", err)
		return
	}
	if err := st.ClearCart(r.Context()); err != nil {
		writeStoreError(w, r, "clear cart", err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// getOrderHandler retrieves an order by ID.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} store.Order
// @Router /orders/{id} [get]
func getOrderHandler(w http.ResponseWriter, r *http.Request) {
	o, err := st.Order(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, r, "get order", err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type statusRequest struct {
	Status string `json:"status"`
}

// updateOrderStatusHandler updates an order's status.
// @Summary Update order status
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body statusRequest true "New status"
// @Success 200 {object} store.Order
// @Router /orders/{id}/status [put]
func updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "status required", http.StatusBadRequest)
		return
	}
	o, err := st.UpdateOrderStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		writeStoreError(w, r, "update order status", err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// convertToInvoiceHandler clones a sales order into an invoice.
// @Summary Convert order to invoice
// @Produce json
// @Param id path string true "Order ID"
// @Success 201 {object} store.Order
// @Router /orders/{id}/invoice [post]
func convertToInvoiceHandler(w http.ResponseWriter, r *http.Request) {
	invoice, err := st.ConvertToInvoice(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, r, "convert to invoice", err)
		return
	}
	writeJSON(w, http.StatusCreated, invoice)
}

// orderPDFHandler renders an order as a printable PDF.
// @Summary Order PDF
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200
// @Router /orders/{id}/pdf [get]
func orderPDFHandler(w http.ResponseWriter, r *http.Request) {
	o, err := st.Order(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, r, "get order", err)
		return
	}
	pdf, err := export.OrderPDF(o, cfg.CompanyName)
	if err != nil {
		logger.Log.Error("render pdf", zap.String("order", o.ID), zap.Error(err))
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(o)+`"`)
	w.Write(pdf)
}

// shareOrderHandler returns a WhatsApp share link for an order.
// @Summary Share order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Router /orders/{id}/share [get]
func shareOrderHandler(w http.ResponseWriter, r *http.Request) {
	o, err := st.Order(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, r, "get order", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": export.WhatsAppLink(o, cfg.CompanyName)})
}

// getProfileHandler returns the session user's account.
// @Summary Get profile
// @Produce json
// @Success 200 {object} store.User
// @Router /profile [get]
func getProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := st.User(r.Context(), username(r))
	if err != nil {
		writeStoreError(w, r, "load user", err)
		return
	}
	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}

// updateProfileHandler shallow-merges the supplied fields onto the session
// user's account. Password changes go through /profile/password instead.
// @Summary Update profile
// @Accept json
// @Produce json
// @Param update body store.UserUpdate true "Fields to update"
// @Success 200 {object} store.User
// @Router /profile [put]
func updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var up store.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&up); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	up.Password = nil
	if err := st.UpdateUser(r.Context(), username(r), up); err != nil {
		writeStoreError(w, r, "update user", err)
		return
	}
	user, err := st.User(r.Context(), username(r))
	if err != nil {
		writeStoreError(w, r, "load user", err)
		return
	}
	user.Password = ""
	writeJSON(w, http.StatusOK, user)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// changePasswordHandler replaces the session user's password after
// verifying the current one.
// @Summary Change password
// @Accept json
// @Param passwords body changePasswordRequest true "Current and new password"
// @Success 204
// @Router /profile/password [put]
func changePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.NewPassword == "" {
		http.Error(w, "new password required", http.StatusBadRequest)
		return
	}
	if err := st.ChangePassword(r.Context(), username(r), req.CurrentPassword, req.NewPassword); err != nil {
		writeStoreError(w, r, "change password", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// orderStatsHandler summarizes the session user's orders, or every order
// with ?all=true.
// @Summary Order stats
// @Produce json
// @Param all query bool false "Include all users' orders"
// @Success 200 {object} store.OrderStats
// @Router /stats [get]
func orderStatsHandler(w http.ResponseWriter, r *http.Request) {
	user := username(r)
	if r.URL.Query().Get("all") == "true" {
		user = ""
	}
	stats, err := st.OrderStats(r.Context(), user)
	if err != nil {
		writeStoreError(w, r, "order stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
