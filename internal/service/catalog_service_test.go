package service_test

import (
	"context"
	"testing"

	"github.com/michaeliyer/canCockOne/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer_ReadsBackStoredRow(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewCatalogService(repo)
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, service.CustomerInput{Name: "  "})
	require.ErrorIs(t, err, service.ErrCustomerNameRequired)

	c, err := svc.CreateCustomer(ctx, service.CustomerInput{Name: "Dana", Email: "d@example.com"})
	require.NoError(t, err)
	require.NotZero(t, c.ID)
	require.Equal(t, "Dana", c.Name)
	require.Equal(t, "d@example.com", c.Email)
	require.False(t, c.CreatedAt.IsZero())
}

func TestProductValidation(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewCatalogService(repo)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, service.ProductInput{Name: "", SKU: "X"})
	require.ErrorIs(t, err, service.ErrProductFieldsRequired)

	_, err = svc.CreateProduct(ctx, service.ProductInput{
		Name: "X", SKU: "X", BasePrice: decimal.NewFromFloat(-1),
	})
	require.ErrorIs(t, err, service.ErrPriceNegative)

	// Zero is a valid price.
	p, err := svc.CreateProduct(ctx, service.ProductInput{Name: "Free", SKU: "FREE-1"})
	require.NoError(t, err)
	require.NotZero(t, p.ID)
}

func TestUpdateDeleteProduct_NotFound(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewCatalogService(repo)
	ctx := context.Background()

	_, err := svc.UpdateProduct(ctx, 9999, service.ProductInput{
		Name: "X", SKU: "X", BasePrice: decimal.NewFromFloat(1),
	})
	require.ErrorIs(t, err, service.ErrProductNotFound)

	require.ErrorIs(t, svc.DeleteProduct(ctx, 9999), service.ErrProductNotFound)
}

func TestVariantLifecycle(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewCatalogService(repo)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, service.ProductInput{
		Name: "Mug", SKU: "MUG-1", BasePrice: decimal.NewFromFloat(8),
	})
	require.NoError(t, err)

	v, err := svc.CreateVariant(ctx, service.VariantInput{
		ProductID: p.ID, Size: "350ml", UnitPrice: decimal.NewFromFloat(8), UnitsInStock: 4,
	})
	require.NoError(t, err)

	list, err := svc.ListVariants(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = svc.UpdateVariant(ctx, v.ID, service.VariantInput{
		Size: "500ml", UnitPrice: decimal.NewFromFloat(9), UnitsInStock: 4,
	})
	require.NoError(t, err)
	require.ErrorIs(t, svc.UpdateVariant(ctx, 9999, service.VariantInput{}), service.ErrVariantNotFound)

	// AddStock has no existence check, any id and any sign succeed.
	require.NoError(t, svc.AddStock(ctx, v.ID, -2))
	require.NoError(t, svc.AddStock(ctx, 9999, 5))
	got, err := repo.Variants.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.UnitsInStock)

	require.NoError(t, svc.DeleteVariant(ctx, v.ID))
	require.ErrorIs(t, svc.DeleteVariant(ctx, v.ID), service.ErrVariantNotFound)
}
