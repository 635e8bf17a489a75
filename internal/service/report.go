package service

import (
	"context"
	"time"

	"github.com/michaeliyer/canCockOne/internal/repository"

	"github.com/shopspring/decimal"
)

type ReportFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID uint
	ProductID  uint
	VariantID  uint
}

type ReportTotals struct {
	TotalOrders   int             `json:"totalOrders"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	TotalBalance  decimal.Decimal `json:"totalBalance"`
}

type SalesReport struct {
	Orders []repository.OrderRow `json:"orders"`
	Totals ReportTotals          `json:"totals"`
}

type ReportService interface {
	SalesReport(ctx context.Context, f ReportFilter) (*SalesReport, error)
	DailyReport(ctx context.Context, date string) (*SalesReport, error)
}
