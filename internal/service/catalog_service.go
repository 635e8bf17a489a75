package service

import (
	"context"
	"strings"
	"time"

	"github.com/michaeliyer/canCockOne/internal/models"
	"github.com/michaeliyer/canCockOne/internal/repository"
)

type catalogService struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewCatalogService(repo *repository.Repository) CatalogService {
	return &catalogService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *catalogService) CreateCustomer(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrCustomerNameRequired
	}

	c := &models.Customer{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Notes:     in.Notes,
		CreatedAt: s.now(),
	}
	if err := s.repo.Customers.Create(ctx, c); err != nil {
		return nil, err
	}

	// Read the row back so the caller sees exactly what was stored.
	stored, err := s.repo.Customers.GetByID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return c, nil
	}
	return stored, nil
}

func (s *catalogService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.Customers.List(ctx)
}

func validateProduct(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.SKU) == "" {
		return ErrProductFieldsRequired
	}
	if in.BasePrice.IsNegative() {
		return ErrPriceNegative
	}
	return nil
}

func (s *catalogService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	now := s.now()
	p := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		SKU:         in.SKU,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.Products.List(ctx)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	p := &models.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		SKU:         in.SKU,
		Category:    in.Category,
	}
	ok, err := s.repo.Products.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uint) error {
	ok, err := s.repo.Products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProductNotFound
	}
	return nil
}

func (s *catalogService) CreateVariant(ctx context.Context, in VariantInput) (*models.Variant, error) {
	v := &models.Variant{
		ProductID:    in.ProductID,
		Size:         in.Size,
		UnitPrice:    in.UnitPrice,
		UnitsInStock: in.UnitsInStock,
		SKU:          in.SKU,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Variants.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *catalogService) ListVariants(ctx context.Context, productID uint) ([]models.Variant, error) {
	return s.repo.Variants.ListByProduct(ctx, productID)
}

func (s *catalogService) UpdateVariant(ctx context.Context, id uint, in VariantInput) error {
	v := &models.Variant{
		ID:           id,
		Size:         in.Size,
		UnitPrice:    in.UnitPrice,
		UnitsInStock: in.UnitsInStock,
		SKU:          in.SKU,
	}
	ok, err := s.repo.Variants.Update(ctx, v)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVariantNotFound
	}
	return nil
}

func (s *catalogService) DeleteVariant(ctx context.Context, id uint) error {
	ok, err := s.repo.Variants.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVariantNotFound
	}
	return nil
}

func (s *catalogService) AddStock(ctx context.Context, id uint, quantity int) error {
	_, err := s.repo.Variants.AddStock(ctx, id, quantity)
	return err
}
