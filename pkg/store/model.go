package store

import "time"

// Product is a catalog entry. Products are immutable once added; cart and
// order lines carry their own snapshot of the fields they need.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Category       string            `json:"category"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	Unit           string            `json:"unit"`
	Image          string            `json:"image"`
	Stock          int               `json:"stock"`
	MinOrder       int               `json:"minOrder"`
	Specifications map[string]string `json:"specifications"`
}

// Contact holds a customer's contact details.
type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Preferences holds per-user settings.
type Preferences struct {
	Notifications bool `json:"notifications"`
	AutoSync      bool `json:"autoSync"`
}

// User is a storefront account. Username doubles as the login key and the
// customer id on orders.
type User struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Password    string      `json:"password"`
	Company     string      `json:"company"`
	Contact     Contact     `json:"contact"`
	Preferences Preferences `json:"preferences"`
	LastLogin   *time.Time  `json:"lastLogin"`
	IsActive    bool        `json:"isActive"`
}

// UserUpdate is a partial update applied to a user via shallow merge. Nil
// fields are left untouched. The username itself cannot be changed.
type UserUpdate struct {
	Password    *string      `json:"password,omitempty"`
	Company     *string      `json:"company,omitempty"`
	Contact     *Contact     `json:"contact,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
	LastLogin   *time.Time   `json:"lastLogin,omitempty"`
	IsActive    *bool        `json:"isActive,omitempty"`
}

// Order document types.
const (
	TypePO      = "PO"
	TypeSO      = "SO"
	TypeInvoice = "Invoice"
)

// Order statuses. Status is an open string; these are the values the store
// itself assigns.
const (
	StatusPending  = "pending"
	StatusInvoiced = "invoiced"
)

// OrderItem is one line on an order or in the cart. Name, price, unit and
// image are a snapshot of the product at add-to-cart time and are not kept
// in sync with later catalog changes.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Unit      string  `json:"unit"`
	Notes     string  `json:"notes"`
	Image     string  `json:"image"`
}

// Totals is the derived money block on an order. It is always recomputed
// from the items at creation time.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Order is a purchase order, sales order or invoice.
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	CustomerID    string      `json:"customerId"`
	Type          string      `json:"type"`
	Status        string      `json:"status"`
	Items         []OrderItem `json:"items"`
	Totals        Totals      `json:"totals"`
	CustomerInfo  Contact     `json:"customerInfo"`
	Notes         string      `json:"notes"`
	InvoiceNumber string      `json:"invoiceNumber,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// OrderInput is the caller-supplied part of a new order.
type OrderInput struct {
	CustomerID   string      `json:"customerId"`
	Type         string      `json:"type"`
	Status       string      `json:"status"`
	Items        []OrderItem `json:"items"`
	CustomerInfo Contact     `json:"customerInfo"`
	Notes        string      `json:"notes"`
}

// OrderStats summarizes order activity for a user, or for every user.
type OrderStats struct {
	TotalOrders     int     `json:"totalOrders"`
	ThisMonthOrders int     `json:"thisMonthOrders"`
	TotalValue      float64 `json:"totalValue"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
}
