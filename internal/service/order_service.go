package service

import (
	"context"
	"time"

	"github.com/michaeliyer/canCockOne/internal/models"
	"github.com/michaeliyer/canCockOne/internal/repository"

	"github.com/shopspring/decimal"
)

type orderService struct {
	repo *repository.Repository
	now  func() time.Time
}

func NewOrderService(repo *repository.Repository) OrderService {
	return &orderService{
		repo: repo,
		now:  time.Now,
	}
}

// CreateOrder is the one genuinely transactional operation in the system:
// the order row, every item row and every stock movement commit together or
// not at all. A missing variant anywhere in the item list aborts the whole
// order.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if in.CustomerID == 0 {
		return nil, ErrCustomerRequired
	}
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, ErrQuantityInvalid
		}
	}

	var (
		order *models.Order
		now   = s.now()
	)

	err := s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		var (
			itemsDB  []models.OrderItem
			itemsSum decimal.Decimal
		)

		for _, it := range in.Items {
			variant, err := tx.Variants.GetByID(ctx, it.VariantID)
			if err != nil {
				return err
			}
			if variant == nil {
				return ErrVariantNotFound
			}

			// Price snapshot: later variant price changes never touch this.
			subtotal := variant.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			itemsSum = itemsSum.Add(subtotal)

			itemsDB = append(itemsDB, models.OrderItem{
				ProductID: variant.ProductID,
				VariantID: variant.ID,
				Quantity:  it.Quantity,
				Subtotal:  subtotal,
				CreatedAt: now,
			})
		}

		total := itemsSum
		if in.TotalPrice != nil {
			total = *in.TotalPrice
		}
		payments := decimal.Zero
		if in.Payments != nil {
			payments = *in.Payments
		}
		balance := total.Sub(payments)
		if in.Balance != nil {
			balance = *in.Balance
		}

		order = &models.Order{
			CustomerID: in.CustomerID,
			Date:       now,
			TotalPrice: total,
			Payments:   payments,
			Balance:    balance,
			Status:     models.OrderStatusOpen,
			CreatedAt:  now,
		}
		if err := tx.Orders.Create(ctx, order); err != nil {
			return err
		}

		for i := range itemsDB {
			itemsDB[i].OrderID = order.ID
		}
		if err := tx.Orders.BulkCreateItems(ctx, itemsDB); err != nil {
			return err
		}

		for _, it := range in.Items {
			if _, err := tx.Variants.RecordSale(ctx, it.VariantID, it.Quantity); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]repository.OrderRow, error) {
	return s.repo.Reports.Rows(ctx, repository.SalesFilter{})
}
