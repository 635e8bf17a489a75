package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderRow is one (order, item) pair of the flattened five-table join used
// by the order list and both reports.
type OrderRow struct {
	OrderID      uint            `json:"order_id"`
	Date         time.Time       `json:"date"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Payments     decimal.Decimal `json:"payments"`
	Balance      decimal.Decimal `json:"balance"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customer_name"`
	ProductName  string          `json:"product_name"`
	VariantSize  string          `json:"variant_size"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// SalesFilter narrows the join. Zero values mean "no filter"; StartDate and
// EndDate only apply as a pair. Day trumps the range when set.
type SalesFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CustomerID uint
	ProductID  uint
	VariantID  uint
	Day        string // YYYY-MM-DD, date-only comparison
}

type ReportRepo interface {
	Rows(ctx context.Context, f SalesFilter) ([]OrderRow, error)
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepo(db *gorm.DB) ReportRepo { return &reportRepo{db: db} }

func (r *reportRepo) Rows(ctx context.Context, f SalesFilter) ([]OrderRow, error) {
	q := r.db.WithContext(ctx).
		Table("orders AS o").
		Select(`o.id AS order_id, o.date, o.total_price, o.payments, o.balance, o.status,
c.name AS customer_name,
p.name AS product_name,
v.size AS variant_size,
i.quantity, i.subtotal`).
		Joins("JOIN customers c ON o.customer_id = c.id").
		Joins("JOIN order_items i ON o.id = i.order_id").
		Joins("JOIN products p ON i.product_id = p.id").
		Joins("JOIN product_variants v ON i.variant_id = v.id")

	if f.Day != "" {
		// Date-only comparison differs per dialect.
		if r.db.Dialector.Name() == "postgres" {
			q = q.Where("o.date::date = ?::date", f.Day)
		} else {
			q = q.Where("DATE(o.date) = DATE(?)", f.Day)
		}
	} else if f.StartDate != nil && f.EndDate != nil {
		q = q.Where("o.date BETWEEN ? AND ?", *f.StartDate, *f.EndDate)
	}

	if f.CustomerID != 0 {
		q = q.Where("o.customer_id = ?", f.CustomerID)
	}
	if f.ProductID != 0 {
		q = q.Where("p.id = ?", f.ProductID)
	}
	if f.VariantID != 0 {
		q = q.Where("v.id = ?", f.VariantID)
	}

	rows := []OrderRow{}
	err := q.Order("o.date DESC").Scan(&rows).Error
	return rows, err
}
