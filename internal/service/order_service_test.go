package service_test

import (
	"context"
	"testing"

	"github.com/michaeliyer/canCockOne/internal/migrate"
	"github.com/michaeliyer/canCockOne/internal/models"
	"github.com/michaeliyer/canCockOne/internal/repository"
	"github.com/michaeliyer/canCockOne/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) *repository.Repository {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, migrate.Run(context.Background(), db, zap.NewNop(), migrate.DefaultMigrateOptions()))
	return repository.New(db)
}

// seedVariant creates one customer, one product and one variant priced 10.00
// with 5 units in stock.
func seedVariant(t *testing.T, repo *repository.Repository) (customerID, variantID uint) {
	t.Helper()
	ctx := context.Background()

	c := &models.Customer{Name: "Seed Customer"}
	require.NoError(t, repo.Customers.Create(ctx, c))

	p := &models.Product{Name: "Seed Product", BasePrice: decimal.NewFromFloat(10), SKU: "SEED-1"}
	require.NoError(t, repo.Products.Create(ctx, p))

	v := &models.Variant{ProductID: p.ID, Size: "M", UnitPrice: decimal.NewFromFloat(10), UnitsInStock: 5}
	require.NoError(t, repo.Variants.Create(ctx, v))

	return c.ID, v.ID
}

func TestCreateOrder_DecrementsStock(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewOrderService(repo)
	ctx := context.Background()

	customerID, variantID := seedVariant(t, repo)

	order, err := svc.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID: customerID,
		Items:      []service.OrderItemInput{{VariantID: variantID, Quantity: 2}},
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Equal(t, models.OrderStatusOpen, order.Status)

	v, err := repo.Variants.GetByID(ctx, variantID)
	require.NoError(t, err)
	require.Equal(t, 3, v.UnitsInStock)
	require.Equal(t, 2, v.UnitsSold)

	items, err := repo.Orders.ItemsByOrderID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.True(t, items[0].Subtotal.Equal(decimal.NewFromFloat(20)),
		"subtotal expected 20.00 got %s", items[0].Subtotal)

	// Totals were not supplied, so total_price falls back to the item sum.
	require.True(t, order.TotalPrice.Equal(decimal.NewFromFloat(20)))
	require.True(t, order.Payments.Equal(decimal.Zero))
	require.True(t, order.Balance.Equal(decimal.NewFromFloat(20)))
}

func TestCreateOrder_MissingVariantRollsBack(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewOrderService(repo)
	ctx := context.Background()

	customerID, variantID := seedVariant(t, repo)

	_, err := svc.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID: customerID,
		Items: []service.OrderItemInput{
			{VariantID: variantID, Quantity: 1},
			{VariantID: 999, Quantity: 2},
		},
	})
	require.ErrorIs(t, err, service.ErrVariantNotFound)

	// Nothing persisted: no order, no items, stock untouched.
	cnt, err := repo.Orders.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, cnt)

	v, err := repo.Variants.GetByID(ctx, variantID)
	require.NoError(t, err)
	require.Equal(t, 5, v.UnitsInStock)
	require.Equal(t, 0, v.UnitsSold)
}

func TestCreateOrder_TrustsCallerTotals(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewOrderService(repo)
	ctx := context.Background()

	customerID, variantID := seedVariant(t, repo)

	total := decimal.NewFromFloat(99.50)
	payments := decimal.NewFromFloat(50)
	balance := decimal.NewFromFloat(49.50)
	order, err := svc.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID: customerID,
		Items:      []service.OrderItemInput{{VariantID: variantID, Quantity: 1}},
		TotalPrice: &total,
		Payments:   &payments,
		Balance:    &balance,
	})
	require.NoError(t, err)

	// Caller figures win even though the item sum is 10.00.
	stored, err := repo.Orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.True(t, stored.TotalPrice.Equal(total))
	require.True(t, stored.Payments.Equal(payments))
	require.True(t, stored.Balance.Equal(balance))
}

func TestCreateOrder_AllowsNegativeStock(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewOrderService(repo)
	ctx := context.Background()

	customerID, variantID := seedVariant(t, repo)

	// Ordering more than is in stock succeeds; there is no floor.
	_, err := svc.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID: customerID,
		Items:      []service.OrderItemInput{{VariantID: variantID, Quantity: 8}},
	})
	require.NoError(t, err)

	v, err := repo.Variants.GetByID(ctx, variantID)
	require.NoError(t, err)
	require.Equal(t, -3, v.UnitsInStock)
	require.Equal(t, 8, v.UnitsSold)
}

func TestCreateOrder_Validation(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewOrderService(repo)
	ctx := context.Background()

	customerID, variantID := seedVariant(t, repo)

	_, err := svc.CreateOrder(ctx, service.CreateOrderInput{
		Items: []service.OrderItemInput{{VariantID: variantID, Quantity: 1}},
	})
	require.ErrorIs(t, err, service.ErrCustomerRequired)

	_, err = svc.CreateOrder(ctx, service.CreateOrderInput{CustomerID: customerID})
	require.ErrorIs(t, err, service.ErrEmptyItems)

	_, err = svc.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID: customerID,
		Items:      []service.OrderItemInput{{VariantID: variantID, Quantity: 0}},
	})
	require.ErrorIs(t, err, service.ErrQuantityInvalid)

	// Validation failures never reach the store.
	cnt, err := repo.Orders.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, cnt)
}

func TestListOrders_NewestFirst(t *testing.T) {
	repo := setupRepo(t)
	svc := service.NewOrderService(repo)
	ctx := context.Background()

	customerID, variantID := seedVariant(t, repo)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateOrder(ctx, service.CreateOrderInput{
			CustomerID: customerID,
			Items:      []service.OrderItemInput{{VariantID: variantID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	rows, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.False(t, rows[0].Date.Before(rows[1].Date), "orders must be date descending")
	require.Equal(t, "Seed Customer", rows[0].CustomerName)
}
