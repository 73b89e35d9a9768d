package models

import "time"

// Event types
const (
	EventTypeOrderPlaced     = "ORDER_PLACED"
	EventTypePaymentRecorded = "PAYMENT_RECORDED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderPlacedEvent published when a checkout creates an order
type OrderPlacedEvent struct {
	BaseEvent
	OrderID int64           `json:"order_id"`
	Cost    int64           `json:"cost"`
	Email   string          `json:"email"`
	Items   []OrderItemData `json:"items"`
}

// PaymentRecordedEvent published when a payment callback is verified
type PaymentRecordedEvent struct {
	BaseEvent
	OrderID       int64  `json:"order_id"`
	TransactionID string `json:"transaction_id"`
}

// OrderItemData represents item data in events
type OrderItemData struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unit_price"`
}
