package repository

import (
	"context"
	"errors"

	"github.com/michaeliyer/canCockOne/internal/models"

	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	// Update replaces the catalog fields of one product. Returns false when
	// no row matched the id.
	Update(ctx context.Context, p *models.Product) (bool, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	list := []models.Product{}
	err := r.db.WithContext(ctx).Order("name").Find(&list).Error
	return list, err
}

func (r *productRepo) Update(ctx context.Context, p *models.Product) (bool, error) {
	tx := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":        p.Name,
		"description": p.Description,
		"base_price":  p.BasePrice,
		"sku":         p.SKU,
		"category":    p.Category,
	})
	return tx.RowsAffected > 0, tx.Error
}

func (r *productRepo) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}
