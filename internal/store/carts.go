package store

import (
	"context"
	"database/sql"
	"fmt"

	"commerce-service/internal/models"
)

// CreateCart inserts a cart row plus its item rows in one transaction
func (s *Store) CreateCart(ctx context.Context, cart *models.Cart, items []models.CartItem) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.GetContext(ctx, &cart.ID,
		"INSERT INTO carts (customer_id) VALUES ($1) RETURNING id", cart.CustomerID); err != nil {
		return fmt.Errorf("failed to insert cart: %w", err)
	}

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, $3)",
			cart.ID, item.ProductID, item.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert cart item: %w", err)
		}
	}

	return tx.Commit()
}

// GetCartByID retrieves a cart by ID
func (s *Store) GetCartByID(ctx context.Context, id int64) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.GetContext(ctx, &cart, "SELECT * FROM carts WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cart %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetCarts retrieves all carts
func (s *Store) GetCarts(ctx context.Context) ([]models.Cart, error) {
	carts := []models.Cart{}
	err := s.db.SelectContext(ctx, &carts, "SELECT * FROM carts ORDER BY id")
	return carts, err
}

// CartsForCustomer retrieves all carts belonging to a customer
func (s *Store) CartsForCustomer(ctx context.Context, customerID int64) ([]models.Cart, error) {
	carts := []models.Cart{}
	err := s.db.SelectContext(ctx, &carts,
		"SELECT * FROM carts WHERE customer_id = $1 ORDER BY id", customerID)
	return carts, err
}

// ItemsForCart joins cart items back to products to attach name and
// price per line item
func (s *Store) ItemsForCart(ctx context.Context, cartID int64) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	err := s.db.SelectContext(ctx, &lines, `
		SELECT ci.id, p.id AS product_id, p.name, p.price, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`, cartID)
	return lines, err
}

// MergeCartItems overwrites quantities of existing (cart, product)
// items in one transaction. Products not already in the cart are left
// alone: a cart update merges, it does not replace.
func (s *Store) MergeCartItems(ctx context.Context, cartID int64, items []models.CartItem) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, item := range items {
		_, err := tx.ExecContext(ctx,
			"UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND product_id = $3",
			item.Quantity, cartID, item.ProductID)
		if err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
	}

	return tx.Commit()
}

// DeleteCart removes a cart and all of its item rows in one transaction
func (s *Store) DeleteCart(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM cart_items WHERE cart_id = $1", id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM carts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if err := requireRow(res, id); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteCartItem removes a single item from a cart
func (s *Store) DeleteCartItem(ctx context.Context, cartID, itemID int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM cart_items WHERE cart_id = $1 AND id = $2", cartID, itemID)
	if err != nil {
		return err
	}
	return requireRow(res, itemID)
}
