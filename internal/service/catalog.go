package service

import (
	"context"

	"github.com/michaeliyer/canCockOne/internal/models"

	"github.com/shopspring/decimal"
)

type CustomerInput struct {
	Name  string
	Email string
	Phone string
	Notes string
}

type ProductInput struct {
	Name        string
	Description string
	BasePrice   decimal.Decimal
	SKU         string
	Category    string
}

type VariantInput struct {
	ProductID    uint
	Size         string
	UnitPrice    decimal.Decimal
	UnitsInStock int
	SKU          string
}

type CatalogService interface {
	CreateCustomer(ctx context.Context, in CustomerInput) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)

	CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id uint, in ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	CreateVariant(ctx context.Context, in VariantInput) (*models.Variant, error)
	ListVariants(ctx context.Context, productID uint) ([]models.Variant, error)
	UpdateVariant(ctx context.Context, id uint, in VariantInput) error
	DeleteVariant(ctx context.Context, id uint) error

	// AddStock applies a signed delta to units_in_stock. No existence check:
	// an unknown id silently affects nothing.
	AddStock(ctx context.Context, id uint, quantity int) error
}
