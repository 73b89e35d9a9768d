package models

import "time"

// Product represents a product in the catalog. Prices are in cents.
type Product struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Price     int64     `db:"price" json:"price"`
	SalePrice *int64    `db:"sale_price" json:"sale_price,omitempty"`
	Image     string    `db:"image" json:"image"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// EffectivePrice returns the sale price when one is set, else the base price.
func (p Product) EffectivePrice() int64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// CartLine is one product entry in a session cart. Name, prices and image
// are snapshotted from the product at add time.
type CartLine struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	SalePrice *int64 `json:"sale_price,omitempty"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// EffectivePrice returns the snapshotted sale price when set, else the
// snapshotted base price.
func (l CartLine) EffectivePrice() int64 {
	if l.SalePrice != nil {
		return *l.SalePrice
	}
	return l.Price
}

// CartSession is the per-session state carried between requests: the cart
// lines, the cached total and the id of the last placed order. Total is
// derived state; every cart mutation recomputes it.
type CartSession struct {
	Lines   []CartLine `json:"lines"`
	Total   int64      `json:"total"`
	OrderID int64      `json:"order_id,omitempty"`
}

// Order represents a placed order. ProductIDs is the comma-joined list of
// ordered product ids, denormalized alongside the order_items rows.
type Order struct {
	ID         int64     `db:"id" json:"id"`
	Cost       int64     `db:"cost" json:"cost"`
	Name       string    `db:"name" json:"name"`
	Email      string    `db:"email" json:"email"`
	Phone      string    `db:"phone" json:"phone"`
	City       string    `db:"city" json:"city"`
	Address    string    `db:"address" json:"address"`
	Status     string    `db:"status" json:"status"`
	ProductIDs string    `db:"products_ids" json:"products_ids"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// OrderItem is the durable record of one cart line at order-creation time.
type OrderItem struct {
	ID        int64     `db:"id" json:"id"`
	OrderID   int64     `db:"order_id" json:"order_id"`
	ProductID int64     `db:"product_id" json:"product_id"`
	Name      string    `db:"product_name" json:"product_name"`
	Price     int64     `db:"product_price" json:"product_price"`
	Image     string    `db:"product_image" json:"product_image"`
	Quantity  int       `db:"product_quantity" json:"product_quantity"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Payment links an external transaction reference to an order.
type Payment struct {
	ID            int64     `db:"id" json:"id"`
	OrderID       int64     `db:"order_id" json:"order_id"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Order statuses
const (
	OrderStatusNotPaid = "not paid"
	OrderStatusPaid    = "paid"
)

// Customer holds the contact fields collected on the checkout form.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	City    string
	Address string
}
