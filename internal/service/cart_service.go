package service

import (
	"context"
	"fmt"

	"commerce-service/internal/models"
	"commerce-service/internal/store"
	"commerce-service/internal/util"
	"commerce-service/internal/validation"

	"go.uber.org/zap"
)

// CartService handles carts and their item rows
type CartService struct {
	store          Store
	eventPublisher EventPublisher
	logger         *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(store Store, eventPublisher EventPublisher) *CartService {
	return &CartService{
		store:          store,
		eventPublisher: eventPublisher,
		logger:         util.GetLogger(),
	}
}

// CartView is the assembled cart representation with product details
// attached per item
type CartView struct {
	CartID     int64             `json:"cart_id"`
	CustomerID int64             `json:"customer_id"`
	Items      []models.CartLine `json:"items"`
}

// CreateCartResult reports the outcome of cart creation
type CreateCartResult struct {
	CartID int64 `json:"cart_id"`
}

// Create validates the payload, resolves every referenced product, and
// inserts the cart plus its items in a single transaction
func (s *CartService) Create(ctx context.Context, in *validation.CartInput) (*CreateCartResult, error) {
	ctx, span := util.StartSpan(ctx, "CartService.Create")
	defer span.End()

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("cart").Inc()
		return nil, &ValidationError{Fields: v}
	}

	if _, err := s.store.GetCustomerByID(ctx, *in.CustomerID); err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	cart := &models.Cart{CustomerID: *in.CustomerID}
	if err := s.store.CreateCart(ctx, cart, items); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}

	util.CartsCreatedTotal.Inc()
	s.logger.Info("Cart created",
		zap.Int64("cart_id", cart.ID),
		zap.Int64("customer_id", cart.CustomerID),
		zap.Int("items", len(items)))

	if s.eventPublisher != nil {
		lines := make([]models.OrderLineData, 0, len(items))
		for _, item := range items {
			lines = append(lines, models.OrderLineData{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		event := &models.CartCreatedEvent{
			BaseEvent:  newBaseEvent(models.EventTypeCartCreated),
			CartID:     cart.ID,
			CustomerID: cart.CustomerID,
			Lines:      lines,
		}
		if err := s.eventPublisher.PublishCartCreated(ctx, event); err != nil {
			s.logger.Error("Failed to publish CartCreated event", zap.Error(err))
		}
	}

	return &CreateCartResult{CartID: cart.ID}, nil
}

// resolveItems verifies every referenced product exists and converts
// the request pairs into cart item rows
func (s *CartService) resolveItems(ctx context.Context, pairs []validation.LineInput) ([]models.CartItem, error) {
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

	items := make([]models.CartItem, 0, len(pairs))
	for _, pair := range pairs {
		if !known[*pair.ProductID] {
			return nil, fmt.Errorf("product %d: %w", *pair.ProductID, store.ErrNotFound)
		}
		items = append(items, models.CartItem{
			ProductID: *pair.ProductID,
			Quantity:  *pair.Quantity,
		})
	}
	return items, nil
}

// Get assembles one cart with its items
func (s *CartService) Get(ctx context.Context, id int64) (*CartView, error) {
	cart, err := s.store.GetCartByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, cart)
}

func (s *CartService) buildView(ctx context.Context, cart *models.Cart) (*CartView, error) {
	items, err := s.store.ItemsForCart(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		CartID:     cart.ID,
		CustomerID: cart.CustomerID,
		Items:      items,
	}, nil
}

// List assembles every cart with its items
func (s *CartService) List(ctx context.Context) ([]CartView, error) {
	carts, err := s.store.GetCarts(ctx)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, carts)
}

// ListByCustomer assembles all carts belonging to one customer
func (s *CartService) ListByCustomer(ctx context.Context, customerID int64) ([]CartView, error) {
	carts, err := s.store.CartsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.buildViews(ctx, carts)
}

// GroupByCustomer groups every cart under its owning customer id
func (s *CartService) GroupByCustomer(ctx context.Context) (map[int64][]CartView, error) {
	carts, err := s.store.GetCarts(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int64][]CartView)
	for i := range carts {
		view, err := s.buildView(ctx, &carts[i])
		if err != nil {
			return nil, err
		}
		grouped[carts[i].CustomerID] = append(grouped[carts[i].CustomerID], *view)
	}
	return grouped, nil
}

func (s *CartService) buildViews(ctx context.Context, carts []models.Cart) ([]CartView, error) {
	views := make([]CartView, 0, len(carts))
	for i := range carts {
		view, err := s.buildView(ctx, &carts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// Update merges submitted quantities into the cart by (cart, product):
// an existing item's quantity is overwritten in place, other items are
// left untouched, and unknown products are ignored. Unlike order
// update, this is a merge, not a full replace.
func (s *CartService) Update(ctx context.Context, id int64, in *validation.CartUpdateInput) error {
	ctx, span := util.StartSpan(ctx, "CartService.Update")
	defer span.End()

	if _, err := s.store.GetCartByID(ctx, id); err != nil {
		return err
	}

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("cart").Inc()
		return &ValidationError{Fields: v}
	}

	items := make([]models.CartItem, 0, len(in.Items))
	for _, pair := range in.Items {
		items = append(items, models.CartItem{
			ProductID: *pair.ProductID,
			Quantity:  *pair.Quantity,
		})
	}

	if err := s.store.MergeCartItems(ctx, id, items); err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}

	s.logger.Info("Cart updated", zap.Int64("cart_id", id), zap.Int("items", len(items)))
	return nil
}

// Delete removes a cart together with all of its item rows
func (s *CartService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "CartService.Delete")
	defer span.End()

	if err := s.store.DeleteCart(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Cart deleted", zap.Int64("cart_id", id))

	if s.eventPublisher != nil {
		event := &models.CartDeletedEvent{
			BaseEvent: newBaseEvent(models.EventTypeCartDeleted),
			CartID:    id,
		}
		if err := s.eventPublisher.PublishCartDeleted(ctx, event); err != nil {
			s.logger.Error("Failed to publish CartDeleted event", zap.Error(err))
		}
	}
	return nil
}

// DeleteItem removes a single item from a cart
func (s *CartService) DeleteItem(ctx context.Context, cartID, itemID int64) error {
	ctx, span := util.StartSpan(ctx, "CartService.DeleteItem")
	defer span.End()

	return s.store.DeleteCartItem(ctx, cartID, itemID)
}
