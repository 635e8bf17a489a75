package repository

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	DB        *gorm.DB
	Customers CustomerRepo
	Products  ProductRepo
	Variants  VariantRepo
	Orders    OrderRepo
	Reports   ReportRepo
}

func buildRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:        db,
		Customers: NewCustomerRepo(db),
		Products:  NewProductRepo(db),
		Variants:  NewVariantRepo(db),
		Orders:    NewOrderRepo(db),
		Reports:   NewReportRepo(db),
	}
}

func New(db *gorm.DB) *Repository { return buildRepository(db) }

// WithTx runs fn against a transaction-scoped copy of the repository.
// Returning an error rolls everything back.
func (r *Repository) WithTx(ctx context.Context, fn func(tx *Repository) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(buildRepository(tx))
	})
}
