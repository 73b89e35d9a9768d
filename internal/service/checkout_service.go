package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService turns a session cart into a persisted order and records
// payment confirmations against it.
type CheckoutService struct {
	orders OrderStore
	events EventPublisher
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service. events may be nil when
// event publishing is disabled.
func NewCheckoutService(orders OrderStore, events EventPublisher) *CheckoutService {
	return &CheckoutService{
		orders: orders,
		events: events,
		logger: util.GetLogger(),
	}
}

// PlaceOrder persists one order row plus one item row per cart line as a
// single transaction and returns the created order. The cart itself is left
// untouched; clearing it after checkout is intentionally not done, matching
// the storefront's historical behavior.
//
// Order ids are minted from the current unix-millisecond clock. Two
// checkouts in the same millisecond would collide; acceptable at this
// store's traffic, revisit if that changes.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sess *models.CartSession, customer models.Customer) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "CheckoutService.PlaceOrder")
	defer span.End()

	if len(sess.Lines) == 0 {
		util.OrdersFailedTotal.WithLabelValues("empty_cart").Inc()
		return nil, ErrEmptyCart
	}
	if err := validateCustomer(customer); err != nil {
		util.OrdersFailedTotal.WithLabelValues("invalid_customer").Inc()
		return nil, err
	}

	productIDs := make([]string, len(sess.Lines))
	items := make([]models.OrderItem, len(sess.Lines))
	for i, line := range sess.Lines {
		productIDs[i] = strconv.FormatInt(line.ProductID, 10)
		items[i] = models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
		}
	}

	order := &models.Order{
		ID:         time.Now().UnixMilli(),
		Cost:       sess.Total,
		Name:       customer.Name,
		Email:      customer.Email,
		Phone:      customer.Phone,
		City:       customer.City,
		Address:    customer.Address,
		Status:     models.OrderStatusNotPaid,
		ProductIDs: strings.Join(productIDs, ","),
	}

	if err := s.orders.CreateOrderWithItems(ctx, order, items); err != nil {
		util.OrdersFailedTotal.WithLabelValues("db_error").Inc()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	util.OrdersPlacedTotal.Inc()
	s.logger.Info("Order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("cost", order.Cost),
		zap.Int("items", len(items)))

	s.publishOrderPlaced(ctx, order, items)

	return order, nil
}

// RecordPayment stores the external transaction reference against the order
// and flips its status to paid. A repeat callback for an already-paid order
// is rejected with ErrAlreadyPaid instead of inserting a second payment row.
func (s *CheckoutService) RecordPayment(ctx context.Context, orderID int64, transactionID string) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "CheckoutService.RecordPayment")
	defer span.End()

	if transactionID == "" {
		util.PaymentsFailedTotal.WithLabelValues("missing_transaction").Inc()
		return nil, &ValidationError{Field: "transaction_id", Reason: "must not be empty"}
	}

	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		util.PaymentsFailedTotal.WithLabelValues("order_not_found").Inc()
		return nil, err
	}
	if order.Status == models.OrderStatusPaid {
		util.PaymentsFailedTotal.WithLabelValues("already_paid").Inc()
		return nil, ErrAlreadyPaid
	}

	payment := &models.Payment{
		OrderID:       orderID,
		TransactionID: transactionID,
	}
	if err := s.orders.CreatePaymentAndMarkPaid(ctx, payment); err != nil {
		util.PaymentsFailedTotal.WithLabelValues("db_error").Inc()
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	order.Status = models.OrderStatusPaid

	util.PaymentsRecordedTotal.Inc()
	s.logger.Info("Payment recorded",
		zap.Int64("order_id", orderID),
		zap.String("transaction_id", transactionID))

	s.publishPaymentRecorded(ctx, orderID, transactionID)

	return order, nil
}

// GetOrder retrieves an order and its items.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID int64) (*models.Order, []models.OrderItem, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.orders.GetOrderItemsByOrderID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	return order, items, nil
}

func (s *CheckoutService) publishOrderPlaced(ctx context.Context, order *models.Order, items []models.OrderItem) {
	if s.events == nil {
		return
	}

	eventItems := make([]models.OrderItemData, len(items))
	for i, item := range items {
		eventItems[i] = models.OrderItemData{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
	}

	event := &models.OrderPlacedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeOrderPlaced,
			Timestamp: time.Now(),
		},
		OrderID: order.ID,
		Cost:    order.Cost,
		Email:   order.Email,
		Items:   eventItems,
	}

	if err := s.events.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish OrderPlaced event", zap.Error(err))
	}
}

func (s *CheckoutService) publishPaymentRecorded(ctx context.Context, orderID int64, transactionID string) {
	if s.events == nil {
		return
	}

	event := &models.PaymentRecordedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypePaymentRecorded,
			Timestamp: time.Now(),
		},
		OrderID:       orderID,
		TransactionID: transactionID,
	}

	if err := s.events.PublishPaymentRecorded(ctx, event); err != nil {
		s.logger.Error("Failed to publish PaymentRecorded event", zap.Error(err))
	}
}

func validateCustomer(c models.Customer) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"city", c.City},
		{"address", c.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name, Reason: "must not be empty"}
		}
	}
	return nil
}
