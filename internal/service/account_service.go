package service

import (
	"context"

	"commerce-service/internal/models"
	"commerce-service/internal/util"
	"commerce-service/internal/validation"

	"go.uber.org/zap"
)

// AccountService handles customer account CRUD
type AccountService struct {
	store  Store
	logger *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(store Store) *AccountService {
	return &AccountService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// List returns all customer accounts
func (s *AccountService) List(ctx context.Context) ([]models.CustomerAccount, error) {
	return s.store.GetAccounts(ctx)
}

// Get returns one account by id
func (s *AccountService) Get(ctx context.Context, id int64) (*models.CustomerAccount, error) {
	return s.store.GetAccountByID(ctx, id)
}

// GetByUsername returns the account with the given username
func (s *AccountService) GetByUsername(ctx context.Context, username string) (*models.CustomerAccount, error) {
	return s.store.GetAccountByUsername(ctx, username)
}

// GetByCustomerID returns the account owned by a customer
func (s *AccountService) GetByCustomerID(ctx context.Context, customerID int64) (*models.CustomerAccount, error) {
	return s.store.GetAccountByCustomerID(ctx, customerID)
}

// Create validates the payload and inserts a new account. Username
// uniqueness is enforced by the database constraint.
func (s *AccountService) Create(ctx context.Context, in *validation.AccountInput) (*models.CustomerAccount, error) {
	ctx, span := util.StartSpan(ctx, "AccountService.Create")
	defer span.End()

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("customer_account").Inc()
		return nil, &ValidationError{Fields: v}
	}

	account := &models.CustomerAccount{
		Username:   *in.Username,
		Password:   *in.Password,
		CustomerID: *in.CustomerID,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("Customer account created",
		zap.Int64("account_id", account.ID),
		zap.Int64("customer_id", account.CustomerID))
	return account, nil
}

// Update validates the payload and overwrites all fields of an existing account
func (s *AccountService) Update(ctx context.Context, id int64, in *validation.AccountInput) error {
	ctx, span := util.StartSpan(ctx, "AccountService.Update")
	defer span.End()

	if _, err := s.store.GetAccountByID(ctx, id); err != nil {
		return err
	}

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("customer_account").Inc()
		return &ValidationError{Fields: v}
	}

	account := &models.CustomerAccount{
		ID:         id,
		Username:   *in.Username,
		Password:   *in.Password,
		CustomerID: *in.CustomerID,
	}

	return s.store.UpdateAccount(ctx, account)
}

// Delete removes a customer account
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "AccountService.Delete")
	defer span.End()

	return s.store.DeleteAccount(ctx, id)
}
