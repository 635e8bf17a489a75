package service

import (
	"context"

	"github.com/michaeliyer/canCockOne/internal/models"
	"github.com/michaeliyer/canCockOne/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderItemInput struct {
	VariantID uint
	Quantity  int
}

// CreateOrderInput carries caller-supplied totals. The server trusts them
// when present; only a missing TotalPrice is backfilled from the item
// subtotals. Nil Payments means zero.
type CreateOrderInput struct {
	CustomerID uint
	Items      []OrderItemInput
	TotalPrice *decimal.Decimal
	Payments   *decimal.Decimal
	Balance    *decimal.Decimal
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	ListOrders(ctx context.Context) ([]repository.OrderRow, error)
}
