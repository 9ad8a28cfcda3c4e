package store

import (
	"context"
	"database/sql"
	"fmt"

	"commerce-service/internal/models"
)

// CreateAccount inserts a new customer account row
func (s *Store) CreateAccount(ctx context.Context, a *models.CustomerAccount) error {
	query := `
		INSERT INTO customer_accounts (username, password, customer_id)
		VALUES ($1, $2, $3)
		RETURNING id`

	return s.db.GetContext(ctx, &a.ID, query, a.Username, a.Password, a.CustomerID)
}

// GetAccountByID retrieves a customer account by ID
func (s *Store) GetAccountByID(ctx context.Context, id int64) (*models.CustomerAccount, error) {
	var account models.CustomerAccount
	err := s.db.GetContext(ctx, &account, "SELECT * FROM customer_accounts WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByUsername retrieves a customer account by its unique username
func (s *Store) GetAccountByUsername(ctx context.Context, username string) (*models.CustomerAccount, error) {
	var account models.CustomerAccount
	err := s.db.GetContext(ctx, &account,
		"SELECT * FROM customer_accounts WHERE username = $1", username)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account %q: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountByCustomerID retrieves the account belonging to a customer
func (s *Store) GetAccountByCustomerID(ctx context.Context, customerID int64) (*models.CustomerAccount, error) {
	var account models.CustomerAccount
	err := s.db.GetContext(ctx, &account,
		"SELECT * FROM customer_accounts WHERE customer_id = $1 ORDER BY id LIMIT 1", customerID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("account for customer %d: %w", customerID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccounts retrieves all customer accounts
func (s *Store) GetAccounts(ctx context.Context) ([]models.CustomerAccount, error) {
	accounts := []models.CustomerAccount{}
	err := s.db.SelectContext(ctx, &accounts, "SELECT * FROM customer_accounts ORDER BY id")
	return accounts, err
}

// UpdateAccount overwrites all mutable fields of a customer account
func (s *Store) UpdateAccount(ctx context.Context, a *models.CustomerAccount) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE customer_accounts SET username = $1, password = $2, customer_id = $3 WHERE id = $4",
		a.Username, a.Password, a.CustomerID, a.ID)
	if err != nil {
		return err
	}
	return requireRow(res, a.ID)
}

// DeleteAccount removes a customer account row
func (s *Store) DeleteAccount(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM customer_accounts WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}
