package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", id, apperr.ErrNoRecordFound)
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) FindByOrg(ctx context.Context, orgID string, offset, limit int) ([]entity.Order, int64, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Order{}).Where("organization_id = ?", orgID)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Order("created_at desc").Offset(offset).Limit(limit).Find(&orders).Error
	return orders, count, err
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", id).Updates(updates).Error
}
