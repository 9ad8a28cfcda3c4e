package service

import (
	"context"

	"commerce-service/internal/models"
	"commerce-service/internal/util"
	"commerce-service/internal/validation"

	"go.uber.org/zap"
)

// CustomerService handles customer CRUD
type CustomerService struct {
	store  Store
	logger *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(store Store) *CustomerService {
	return &CustomerService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.store.GetCustomers(ctx)
}

// Get returns one customer by id
func (s *CustomerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	return s.store.GetCustomerByID(ctx, id)
}

// GetByEmail returns the first customer with the given email
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return s.store.GetCustomerByEmail(ctx, email)
}

// Create validates the payload and inserts a new customer
func (s *CustomerService) Create(ctx context.Context, in *validation.CustomerInput) (*models.Customer, error) {
	ctx, span := util.StartSpan(ctx, "CustomerService.Create")
	defer span.End()

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("customer").Inc()
		return nil, &ValidationError{Fields: v}
	}

	customer := &models.Customer{
		Name:  *in.Name,
		Email: *in.Email,
		Phone: *in.Phone,
	}

	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}

	util.CustomersCreatedTotal.Inc()
	s.logger.Info("Customer created", zap.Int64("customer_id", customer.ID))
	return customer, nil
}

// Update validates the payload and overwrites all fields of an existing
// customer. It is a full replace, not a partial patch.
func (s *CustomerService) Update(ctx context.Context, id int64, in *validation.CustomerInput) error {
	ctx, span := util.StartSpan(ctx, "CustomerService.Update")
	defer span.End()

	if _, err := s.store.GetCustomerByID(ctx, id); err != nil {
		return err
	}

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("customer").Inc()
		return &ValidationError{Fields: v}
	}

	customer := &models.Customer{
		ID:    id,
		Name:  *in.Name,
		Email: *in.Email,
		Phone: *in.Phone,
	}

	return s.store.UpdateCustomer(ctx, customer)
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "CustomerService.Delete")
	defer span.End()

	return s.store.DeleteCustomer(ctx, id)
}
