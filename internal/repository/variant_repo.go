package repository

import (
	"context"
	"errors"

	"github.com/michaeliyer/canCockOne/internal/models"

	"gorm.io/gorm"
)

type VariantRepo interface {
	Create(ctx context.Context, v *models.Variant) error
	GetByID(ctx context.Context, id uint) (*models.Variant, error)
	ListByProduct(ctx context.Context, productID uint) ([]models.Variant, error)
	Update(ctx context.Context, v *models.Variant) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)

	// AddStock adds delta (any sign) to units_in_stock. An absent id affects
	// zero rows and is not an error.
	AddStock(ctx context.Context, id uint, delta int) (int64, error)

	// RecordSale moves qty from stock to sold in a single UPDATE. There is
	// deliberately no floor: stock may go negative. Two concurrent callers
	// can both read stock before either commits; that race is inherited
	// behavior, not a guarantee.
	RecordSale(ctx context.Context, id uint, qty int) (bool, error)
}

type variantRepo struct{ db *gorm.DB }

func NewVariantRepo(db *gorm.DB) VariantRepo { return &variantRepo{db: db} }

func (r *variantRepo) Create(ctx context.Context, v *models.Variant) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *variantRepo) GetByID(ctx context.Context, id uint) (*models.Variant, error) {
	var v models.Variant
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *variantRepo) ListByProduct(ctx context.Context, productID uint) ([]models.Variant, error) {
	list := []models.Variant{}
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&list).Error
	return list, err
}

func (r *variantRepo) Update(ctx context.Context, v *models.Variant) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.Variant{}).Where("id = ?", v.ID).Updates(map[string]any{
		"size":           v.Size,
		"unit_price":     v.UnitPrice,
		"units_in_stock": v.UnitsInStock,
		"sku":            v.SKU,
	})
	return tx.RowsAffected > 0, tx.Error
}

func (r *variantRepo) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Variant{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (r *variantRepo) AddStock(ctx context.Context, id uint, delta int) (int64, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE product_variants
SET units_in_stock = units_in_stock + ?
WHERE id = ?
`, delta, id)
	return tx.RowsAffected, tx.Error
}

func (r *variantRepo) RecordSale(ctx context.Context, id uint, qty int) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE product_variants
SET units_in_stock = units_in_stock - ?,
    units_sold     = units_sold + ?
WHERE id = ?
`, qty, qty, id)
	return tx.RowsAffected > 0, tx.Error
}
