package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"commerce-service/internal/models"
	"commerce-service/internal/store"
	"commerce-service/internal/util"
	"commerce-service/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

// OrderService handles order aggregation across the order/product
// many-to-many association
type OrderService struct {
	store          Store
	idempotency    IdempotencyStore
	eventPublisher EventPublisher
	logger         *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(store Store, idempotency IdempotencyStore, eventPublisher EventPublisher) *OrderService {
	return &OrderService{
		store:          store,
		idempotency:    idempotency,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// CustomerRef is the customer block embedded in order responses
type CustomerRef struct {
	CustomerID int64  `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// OrderSummary is the flat order representation used by list endpoints
type OrderSummary struct {
	OrderID      int64      `json:"order_id"`
	OrderDate    time.Time  `json:"order_date"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	CustomerID   int64      `json:"customer_id"`
}

// OrderStatus is the lightweight order view with its customer attached
type OrderStatus struct {
	OrderSummary
	Customer CustomerRef `json:"customer"`
}

// OrderDetail is the canonical detailed order representation: header,
// customer, and line items joined back to product name and price
type OrderDetail struct {
	OrderSummary
	Customer CustomerRef        `json:"customer"`
	Products []models.OrderLine `json:"products"`
}

// CreateOrderResult reports the outcome of order creation
type CreateOrderResult struct {
	OrderID   int64 `json:"order_id"`
	Duplicate bool  `json:"duplicate,omitempty"`
}

func summarize(o *models.Order) OrderSummary {
	s := OrderSummary{
		OrderID:    o.ID,
		OrderDate:  o.OrderDate,
		CustomerID: o.CustomerID,
	}
	if o.DeliveryDate.Valid {
		d := o.DeliveryDate.Time
		s.DeliveryDate = &d
	}
	return s
}

func customerRef(c *models.Customer) CustomerRef {
	return CustomerRef{
		CustomerID: c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
	}
}

// Create validates the payload, resolves the customer and every
// referenced product, and inserts the order plus one association row
// per (product, quantity) pair in a single transaction
func (s *OrderService) Create(ctx context.Context, in *validation.OrderInput, idempotencyKey string) (*CreateOrderResult, error) {
	ctx, span := util.StartSpan(ctx, "OrderService.Create")
	defer span.End()

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("order").Inc()
		return nil, &ValidationError{Fields: v}
	}

	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	} else {
		if existing, err := s.findDuplicate(ctx, idempotencyKey); err != nil {
			return nil, err
		} else if existing != nil {
			s.logger.Info("Duplicate order request detected",
				zap.String("idempotency_key", idempotencyKey),
				zap.Int64("order_id", existing.ID))
			return &CreateOrderResult{OrderID: existing.ID, Duplicate: true}, nil
		}
	}

	if _, err := s.store.GetCustomerByID(ctx, *in.CustomerID); err != nil {
		return nil, err
	}

	lines, err := s.resolveLines(ctx, in.Products)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID:     *in.CustomerID,
		IdempotencyKey: sql.NullString{String: idempotencyKey, Valid: true},
	}
	if in.DeliveryDate != nil {
		order.DeliveryDate = sql.NullTime{Time: *in.DeliveryDate, Valid: true}
	}

	if err := s.store.CreateOrder(ctx, order, lines); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.idempotency != nil {
		if err := s.idempotency.SetIdempotencyKey(ctx, idempotencyKey, order.ID, idempotencyTTL); err != nil {
			s.logger.Warn("Failed to record idempotency key", zap.Error(err))
		}
	}

	util.OrdersCreatedTotal.Inc()
	s.logger.Info("Order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("customer_id", order.CustomerID),
		zap.Int("lines", len(lines)))

	s.publishOrderEvent(ctx, models.EventTypeOrderCreated, order, lines)

	return &CreateOrderResult{OrderID: order.ID}, nil
}

// findDuplicate looks up the key in Redis and then in the database.
// The cache result is advisory only: a flushed or restarted Redis must
// not let a replayed key through, so the unique column on orders is
// always consulted and stays the source of truth.
func (s *OrderService) findDuplicate(ctx context.Context, key string) (*models.Order, error) {
	if s.idempotency != nil {
		seen, err := s.idempotency.CheckIdempotencyKey(ctx, key)
		if err != nil {
			s.logger.Warn("Idempotency fast path unavailable", zap.Error(err))
		} else if seen {
			s.logger.Debug("Idempotency key present in cache",
				zap.String("idempotency_key", key))
		}
	}

	existing, err := s.store.GetOrderByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check idempotency: %w", err)
	}
	return existing, nil
}

// resolveLines verifies every referenced product exists and converts
// the request pairs into association rows
func (s *OrderService) resolveLines(ctx context.Context, pairs []validation.LineInput) ([]models.OrderProduct, error) {
	ids := make([]int64, len(pairs))
	for i, pair := range pairs {
		ids[i] = *pair.ProductID
	}

	products, err := s.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	known := make(map[int64]bool, len(products))
	for _, p := range products {
		known[p.ID] = true
	}

	lines := make([]models.OrderProduct, 0, len(pairs))
	for _, pair := range pairs {
		if !known[*pair.ProductID] {
			return nil, fmt.Errorf("product %d: %w", *pair.ProductID, store.ErrNotFound)
		}
		lines = append(lines, models.OrderProduct{
			ProductID: *pair.ProductID,
			Quantity:  *pair.Quantity,
		})
	}
	return lines, nil
}

// Update replaces the full set of association rows for an order from
// the submitted list. A product omitted from the payload is removed
// from the order; this is a full replace, not a merge.
func (s *OrderService) Update(ctx context.Context, id int64, in *validation.OrderInput) error {
	ctx, span := util.StartSpan(ctx, "OrderService.Update")
	defer span.End()

	order, err := s.store.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("order").Inc()
		return &ValidationError{Fields: v}
	}

	if _, err := s.store.GetCustomerByID(ctx, *in.CustomerID); err != nil {
		return err
	}

	lines, err := s.resolveLines(ctx, in.Products)
	if err != nil {
		return err
	}

	order.CustomerID = *in.CustomerID
	if in.DeliveryDate != nil {
		order.DeliveryDate = sql.NullTime{Time: *in.DeliveryDate, Valid: true}
	}

	if err := s.store.ReplaceOrderLines(ctx, order, lines); err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}

	util.OrdersUpdatedTotal.Inc()
	s.logger.Info("Order updated",
		zap.Int64("order_id", order.ID),
		zap.Int("lines", len(lines)))

	s.publishOrderEvent(ctx, models.EventTypeOrderUpdated, order, lines)
	return nil
}

// Get assembles the canonical detailed representation of one order
func (s *OrderService) Get(ctx context.Context, id int64) (*OrderDetail, error) {
	order, err := s.store.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.store.GetCustomerByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	lines, err := s.store.LineItemsForOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	return &OrderDetail{
		OrderSummary: summarize(order),
		Customer:     customerRef(customer),
		Products:     lines,
	}, nil
}

// Status returns the order header with its customer, without line items
func (s *OrderService) Status(ctx context.Context, id int64) (*OrderStatus, error) {
	order, err := s.store.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.store.GetCustomerByID(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	return &OrderStatus{
		OrderSummary: summarize(order),
		Customer:     customerRef(customer),
	}, nil
}

// List returns all orders
func (s *OrderService) List(ctx context.Context) ([]OrderSummary, error) {
	orders, err := s.store.GetOrders(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, summarize(&orders[i]))
	}
	return summaries, nil
}

// ListByCustomer returns all orders placed by one customer
func (s *OrderService) ListByCustomer(ctx context.Context, customerID int64) ([]OrderSummary, error) {
	orders, err := s.store.OrdersForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for i := range orders {
		summaries = append(summaries, summarize(&orders[i]))
	}
	return summaries, nil
}

// Delete removes an order together with its association rows
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "OrderService.Delete")
	defer span.End()

	if err := s.store.DeleteOrder(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Order deleted", zap.Int64("order_id", id))

	if s.eventPublisher != nil {
		event := &models.OrderDeletedEvent{
			BaseEvent: newBaseEvent(models.EventTypeOrderDeleted),
			OrderID:   id,
		}
		if err := s.eventPublisher.PublishOrderDeleted(ctx, event); err != nil {
			s.logger.Error("Failed to publish OrderDeleted event", zap.Error(err))
		}
	}
	return nil
}

func (s *OrderService) publishOrderEvent(ctx context.Context, eventType string, order *models.Order, lines []models.OrderProduct) {
	if s.eventPublisher == nil {
		return
	}

	data := make([]models.OrderLineData, 0, len(lines))
	for _, line := range lines {
		data = append(data, models.OrderLineData{ProductID: line.ProductID, Quantity: line.Quantity})
	}

	var err error
	switch eventType {
	case models.EventTypeOrderCreated:
		err = s.eventPublisher.PublishOrderCreated(ctx, &models.OrderCreatedEvent{
			BaseEvent:  newBaseEvent(eventType),
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			Lines:      data,
		})
	case models.EventTypeOrderUpdated:
		err = s.eventPublisher.PublishOrderUpdated(ctx, &models.OrderUpdatedEvent{
			BaseEvent:  newBaseEvent(eventType),
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			Lines:      data,
		})
	}
	if err != nil {
		s.logger.Error("Failed to publish order event",
			zap.String("event_type", eventType), zap.Error(err))
	}
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}
