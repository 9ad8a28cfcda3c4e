package models

import "time"

// Event types
const (
	EventTypeOrderCreated = "ORDER_CREATED"
	EventTypeOrderUpdated = "ORDER_UPDATED"
	EventTypeOrderDeleted = "ORDER_DELETED"
	EventTypeCartCreated  = "CART_CREATED"
	EventTypeCartDeleted  = "CART_DELETED"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderLineData represents line-item data in events
type OrderLineData struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderCreatedEvent published when an order is created
type OrderCreatedEvent struct {
	BaseEvent
	OrderID    int64           `json:"order_id"`
	CustomerID int64           `json:"customer_id"`
	Lines      []OrderLineData `json:"lines"`
}

// OrderUpdatedEvent published when an order's line items are replaced
type OrderUpdatedEvent struct {
	BaseEvent
	OrderID    int64           `json:"order_id"`
	CustomerID int64           `json:"customer_id"`
	Lines      []OrderLineData `json:"lines"`
}

// OrderDeletedEvent published when an order is removed
type OrderDeletedEvent struct {
	BaseEvent
	OrderID int64 `json:"order_id"`
}

// CartCreatedEvent published when a cart is created
type CartCreatedEvent struct {
	BaseEvent
	CartID     int64           `json:"cart_id"`
	CustomerID int64           `json:"customer_id"`
	Lines      []OrderLineData `json:"lines"`
}

// CartDeletedEvent published when a cart and its items are removed
type CartDeletedEvent struct {
	BaseEvent
	CartID int64 `json:"cart_id"`
}
