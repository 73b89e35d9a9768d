package service

import (
	"context"

	"storefront/internal/models"
)

// ProductStore is the catalog read surface the services need.
type ProductStore interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
}

// OrderStore is the durable order/payment surface the checkout workflow
// needs.
type OrderStore interface {
	CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	GetOrderItemsByOrderID(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	CreatePaymentAndMarkPaid(ctx context.Context, payment *models.Payment) error
}

// EventPublisher publishes checkout domain events.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event *models.OrderPlacedEvent) error
	PublishPaymentRecorded(ctx context.Context, event *models.PaymentRecordedEvent) error
}
