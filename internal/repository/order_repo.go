package repository

import (
	"context"
	"errors"

	"github.com/michaeliyer/canCockOne/internal/models"

	"gorm.io/gorm"
)

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	BulkCreateItems(ctx context.Context, items []models.OrderItem) error
	ItemsByOrderID(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	Count(ctx context.Context) (int64, error)
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) BulkCreateItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *orderRepo) ItemsByOrderID(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	rows := []models.OrderItem{}
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&rows).Error
	return rows, err
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&cnt).Error
	return cnt, err
}
