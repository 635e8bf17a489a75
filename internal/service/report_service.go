package service

import (
	"context"

	"github.com/michaeliyer/canCockOne/internal/repository"

	"github.com/shopspring/decimal"
)

type reportService struct {
	repo *repository.Repository
}

func NewReportService(repo *repository.Repository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) SalesReport(ctx context.Context, f ReportFilter) (*SalesReport, error) {
	rows, err := s.repo.Reports.Rows(ctx, repository.SalesFilter{
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		CustomerID: f.CustomerID,
		ProductID:  f.ProductID,
		VariantID:  f.VariantID,
	})
	if err != nil {
		return nil, err
	}
	return &SalesReport{Orders: rows, Totals: aggregate(rows)}, nil
}

func (s *reportService) DailyReport(ctx context.Context, date string) (*SalesReport, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	rows, err := s.repo.Reports.Rows(ctx, repository.SalesFilter{Day: date})
	if err != nil {
		return nil, err
	}
	return &SalesReport{Orders: rows, Totals: aggregate(rows)}, nil
}

// aggregate sums over the flattened rows. TotalSales/-Payments/-Balance add
// the order-level figures once per row, so a multi-item order counts its
// totals once per item. TotalOrders deduplicates by order id.
func aggregate(rows []repository.OrderRow) ReportTotals {
	t := ReportTotals{
		TotalSales:    decimal.Zero,
		TotalPayments: decimal.Zero,
		TotalBalance:  decimal.Zero,
	}

	seen := make(map[uint]struct{}, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.OrderID]; !ok {
			seen[r.OrderID] = struct{}{}
			t.TotalOrders++
		}
		t.TotalQuantity += r.Quantity
		t.TotalSales = t.TotalSales.Add(r.TotalPrice)
		t.TotalPayments = t.TotalPayments.Add(r.Payments)
		t.TotalBalance = t.TotalBalance.Add(r.Balance)
	}
	return t
}
