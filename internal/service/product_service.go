package service

import (
	"context"

	"commerce-service/internal/models"
	"commerce-service/internal/util"
	"commerce-service/internal/validation"

	"go.uber.org/zap"
)

// ProductService handles product CRUD
type ProductService struct {
	store  Store
	logger *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(store Store) *ProductService {
	return &ProductService{
		store:  store,
		logger: util.GetLogger(),
	}
}

// List returns all products
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.store.GetProducts(ctx)
}

// Get returns one product by id
func (s *ProductService) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.store.GetProductByID(ctx, id)
}

// GetByName returns the first product with the given name
func (s *ProductService) GetByName(ctx context.Context, name string) (*models.Product, error) {
	return s.store.GetProductByName(ctx, name)
}

// Create validates the payload and inserts a new product
func (s *ProductService) Create(ctx context.Context, in *validation.ProductInput) (*models.Product, error) {
	ctx, span := util.StartSpan(ctx, "ProductService.Create")
	defer span.End()

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("product").Inc()
		return nil, &ValidationError{Fields: v}
	}

	product := &models.Product{
		Name:        *in.Name,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		Description: *in.Description,
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}

	util.ProductsCreatedTotal.Inc()
	s.logger.Info("Product created", zap.Int64("product_id", product.ID))
	return product, nil
}

// Update validates the payload and overwrites all fields of an existing product
func (s *ProductService) Update(ctx context.Context, id int64, in *validation.ProductInput) error {
	ctx, span := util.StartSpan(ctx, "ProductService.Update")
	defer span.End()

	if _, err := s.store.GetProductByID(ctx, id); err != nil {
		return err
	}

	if v := in.Validate(); !v.Empty() {
		util.ValidationFailuresTotal.WithLabelValues("product").Inc()
		return &ValidationError{Fields: v}
	}

	product := &models.Product{
		ID:          id,
		Name:        *in.Name,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		Description: *in.Description,
	}

	return s.store.UpdateProduct(ctx, product)
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	ctx, span := util.StartSpan(ctx, "ProductService.Delete")
	defer span.End()

	return s.store.DeleteProduct(ctx, id)
}
