package repository

import (
	"context"
	"errors"

	"github.com/michaeliyer/canCockOne/internal/models"

	"gorm.io/gorm"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) CustomerRepo { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *customerRepo) List(ctx context.Context) ([]models.Customer, error) {
	list := []models.Customer{}
	err := r.db.WithContext(ctx).Order("name").Find(&list).Error
	return list, err
}
