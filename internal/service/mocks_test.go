package service

import (
	"context"
	"fmt"

	"storefront/internal/models"
	"storefront/internal/store"
)

// mockOrderStore implements OrderStore for testing
type mockOrderStore struct {
	orders   map[int64]*models.Order
	items    map[int64][]models.OrderItem
	payments []models.Payment

	createOrderErr error
	paymentErr     error
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{
		orders: make(map[int64]*models.Order),
		items:  make(map[int64][]models.OrderItem),
	}
}

func (m *mockOrderStore) CreateOrderWithItems(_ context.Context, order *models.Order, items []models.OrderItem) error {
	if m.createOrderErr != nil {
		return m.createOrderErr
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	copied := *order
	m.orders[order.ID] = &copied
	m.items[order.ID] = items
	return nil
}

func (m *mockOrderStore) GetOrderByID(_ context.Context, id int64) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %d: %w", id, store.ErrNotFound)
	}
	copied := *order
	return &copied, nil
}

func (m *mockOrderStore) GetOrderItemsByOrderID(_ context.Context, orderID int64) ([]models.OrderItem, error) {
	return m.items[orderID], nil
}

func (m *mockOrderStore) CreatePaymentAndMarkPaid(_ context.Context, payment *models.Payment) error {
	if m.paymentErr != nil {
		return m.paymentErr
	}
	m.payments = append(m.payments, *payment)
	m.orders[payment.OrderID].Status = models.OrderStatusPaid
	return nil
}

// mockProductStore implements ProductStore for testing
type mockProductStore struct {
	products map[int64]*models.Product
}

func (m *mockProductStore) GetProducts(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductStore) GetProductByID(_ context.Context, id int64) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, store.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

// mockPublisher implements EventPublisher for testing
type mockPublisher struct {
	placed   []*models.OrderPlacedEvent
	recorded []*models.PaymentRecordedEvent
	err      error
}

func (m *mockPublisher) PublishOrderPlaced(_ context.Context, event *models.OrderPlacedEvent) error {
	if m.err != nil {
		return m.err
	}
	m.placed = append(m.placed, event)
	return nil
}

func (m *mockPublisher) PublishPaymentRecorded(_ context.Context, event *models.PaymentRecordedEvent) error {
	if m.err != nil {
		return m.err
	}
	m.recorded = append(m.recorded, event)
	return nil
}
