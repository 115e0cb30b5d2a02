package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// FindPublishedByOrg returns the org's published products in creation
// order; the catalog projection depends on that ordering.
func (r *ProductRepository) FindPublishedByOrg(ctx context.Context, orgID string) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.WithContext(ctx).
		Where("organization_id = ? AND published = ?", orgID, true).
		Order("created_at asc").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByOrg(ctx context.Context, orgID string) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at asc").
		Find(&products).Error
	return products, err
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.DB.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, apperr.ErrNoRecordFound)
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id).Error
}
