package store

import (
	"context"
	"database/sql"
	"fmt"

	"commerce-service/internal/models"
)

// CreateOrder inserts an order row plus its association rows in one
// transaction, so a failed line insert leaves no half-written order
func (s *Store) CreateOrder(ctx context.Context, order *models.Order, lines []models.OrderProduct) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (customer_id, delivery_date, idempotency_key)
		VALUES ($1, $2, $3)
		RETURNING id, order_date`

	if err := tx.GetContext(ctx, order, query,
		order.CustomerID, order.DeliveryDate, order.IdempotencyKey); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, line := range lines {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO order_products (order_id, product_id, quantity) VALUES ($1, $2, $3)",
			order.ID, line.ProductID, line.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	return tx.Commit()
}

// ReplaceOrderLines updates the order header and replaces the full set
// of association rows from the submitted lines. Delete-then-reinsert
// runs inside a single transaction so concurrent readers never observe
// a partially replaced order.
func (s *Store) ReplaceOrderLines(ctx context.Context, order *models.Order, lines []models.OrderProduct) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE orders SET customer_id = $1, delivery_date = $2 WHERE id = $3",
		order.CustomerID, order.DeliveryDate, order.ID)
	if err != nil {
		return err
	}
	if err := requireRow(res, order.ID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM order_products WHERE order_id = $1", order.ID); err != nil {
		return fmt.Errorf("failed to clear order lines: %w", err)
	}

	for _, line := range lines {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO order_products (order_id, product_id, quantity) VALUES ($1, $2, $3)",
			order.ID, line.ProductID, line.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	return tx.Commit()
}

// GetOrderByID retrieves an order by ID
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrderByIdempotencyKey retrieves an order by idempotency key,
// returning (nil, nil) when no such order exists
func (s *Store) GetOrderByIdempotencyKey(ctx context.Context, key string) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order, "SELECT * FROM orders WHERE idempotency_key = $1", key)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrders retrieves all orders
func (s *Store) GetOrders(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.SelectContext(ctx, &orders, "SELECT * FROM orders ORDER BY id")
	return orders, err
}

// OrdersForCustomer retrieves all orders placed by a customer
func (s *Store) OrdersForCustomer(ctx context.Context, customerID int64) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db.SelectContext(ctx, &orders,
		"SELECT * FROM orders WHERE customer_id = $1 ORDER BY order_date DESC", customerID)
	return orders, err
}

// LineItemsForOrder joins the association rows back to products to
// attach name and price per line item
func (s *Store) LineItemsForOrder(ctx context.Context, orderID int64) ([]models.OrderLine, error) {
	lines := []models.OrderLine{}
	err := s.db.SelectContext(ctx, &lines, `
		SELECT p.id AS product_id, p.name, p.price, op.quantity
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY p.id`, orderID)
	return lines, err
}

// DeleteOrder removes an order and its association rows in one transaction
func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM order_products WHERE order_id = $1", id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if err := requireRow(res, id); err != nil {
		return err
	}

	return tx.Commit()
}
