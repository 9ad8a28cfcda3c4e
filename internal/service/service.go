package service

import (
	"context"
	"fmt"
	"time"

	"commerce-service/internal/models"
	"commerce-service/internal/validation"
)

// Store is the persistence surface the services depend on. It is
// satisfied by *store.Store and by in-memory fakes in tests.
type Store interface {
	CreateCustomer(ctx context.Context, c *models.Customer) error
	GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	GetCustomers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomer(ctx context.Context, c *models.Customer) error
	DeleteCustomer(ctx context.Context, id int64) error

	CreateProduct(ctx context.Context, p *models.Product) error
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	GetProductByName(ctx context.Context, name string) (*models.Product, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int64) ([]models.Product, error)
	UpdateProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id int64) error

	CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderProduct) error
	ReplaceOrderLines(ctx context.Context, order *models.Order, lines []models.OrderProduct) error
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	GetOrderByIdempotencyKey(ctx context.Context, key string) (*models.Order, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	OrdersForCustomer(ctx context.Context, customerID int64) ([]models.Order, error)
	LineItemsForOrder(ctx context.Context, orderID int64) ([]models.OrderLine, error)
	DeleteOrder(ctx context.Context, id int64) error

	CreateAccount(ctx context.Context, a *models.CustomerAccount) error
	GetAccountByID(ctx context.Context, id int64) (*models.CustomerAccount, error)
	GetAccountByUsername(ctx context.Context, username string) (*models.CustomerAccount, error)
	GetAccountByCustomerID(ctx context.Context, customerID int64) (*models.CustomerAccount, error)
	GetAccounts(ctx context.Context) ([]models.CustomerAccount, error)
	UpdateAccount(ctx context.Context, a *models.CustomerAccount) error
	DeleteAccount(ctx context.Context, id int64) error

	CreateCart(ctx context.Context, cart *models.Cart, items []models.CartItem) error
	GetCartByID(ctx context.Context, id int64) (*models.Cart, error)
	GetCarts(ctx context.Context) ([]models.Cart, error)
	CartsForCustomer(ctx context.Context, customerID int64) ([]models.Cart, error)
	ItemsForCart(ctx context.Context, cartID int64) ([]models.CartLine, error)
	MergeCartItems(ctx context.Context, cartID int64, items []models.CartItem) error
	DeleteCart(ctx context.Context, id int64) error
	DeleteCartItem(ctx context.Context, cartID, itemID int64) error
}

// EventPublisher publishes domain events to the broker
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, event *models.OrderCreatedEvent) error
	PublishOrderUpdated(ctx context.Context, event *models.OrderUpdatedEvent) error
	PublishOrderDeleted(ctx context.Context, event *models.OrderDeletedEvent) error
	PublishCartCreated(ctx context.Context, event *models.CartCreatedEvent) error
	PublishCartDeleted(ctx context.Context, event *models.CartDeletedEvent) error
}

// IdempotencyStore is the fast-path duplicate check for order creation
type IdempotencyStore interface {
	CheckIdempotencyKey(ctx context.Context, key string) (bool, error)
	SetIdempotencyKey(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// ValidationError carries the per-field violation map for a rejected payload
type ValidationError struct {
	Fields validation.Violations
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
