package models

import (
	"database/sql"
	"time"
)

// Customer represents a customer record
type Customer struct {
	ID    int64  `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Phone string `db:"phone" json:"phone"`
}

// Product represents a product in the catalog
type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Description string  `db:"description" json:"description"`
}

// Order represents a customer order
type Order struct {
	ID             int64          `db:"id" json:"id"`
	OrderDate      time.Time      `db:"order_date" json:"order_date"`
	DeliveryDate   sql.NullTime   `db:"delivery_date" json:"-"`
	CustomerID     int64          `db:"customer_id" json:"customer_id"`
	IdempotencyKey sql.NullString `db:"idempotency_key" json:"-"`
}

// OrderProduct is one row of the order/product association,
// carrying the ordered quantity for that pair
type OrderProduct struct {
	OrderID   int64 `db:"order_id" json:"order_id"`
	ProductID int64 `db:"product_id" json:"product_id"`
	Quantity  int   `db:"quantity" json:"quantity"`
}

// OrderLine is one order line item joined back to its product
type OrderLine struct {
	ProductID int64   `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Quantity  int     `db:"quantity" json:"quantity"`
}

// CustomerAccount represents a customer's login account
type CustomerAccount struct {
	ID         int64  `db:"id" json:"id"`
	Username   string `db:"username" json:"username"`
	Password   string `db:"password" json:"password"`
	CustomerID int64  `db:"customer_id" json:"customer_id"`
}

// Cart represents a customer's shopping cart
type Cart struct {
	ID         int64 `db:"id" json:"id"`
	CustomerID int64 `db:"customer_id" json:"customer_id"`
}

// CartItem represents one product entry in a cart
type CartItem struct {
	ID        int64 `db:"id" json:"id"`
	CartID    int64 `db:"cart_id" json:"cart_id"`
	ProductID int64 `db:"product_id" json:"product_id"`
	Quantity  int   `db:"quantity" json:"quantity"`
}

// CartLine is a cart item joined back to its product
type CartLine struct {
	ItemID    int64   `db:"id" json:"item_id"`
	ProductID int64   `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Quantity  int     `db:"quantity" json:"quantity"`
}

// ProcessedEvent for consumer idempotency
type ProcessedEvent struct {
	EventID     string    `db:"event_id"`
	EventType   string    `db:"event_type"`
	ProcessedAt time.Time `db:"processed_at"`
}
