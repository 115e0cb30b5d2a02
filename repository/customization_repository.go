package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
)

// CustomizationRepository covers customization groups and their
// product mappings.
type CustomizationRepository struct {
	DB *gorm.DB
}

func NewCustomizationRepository(db *gorm.DB) *CustomizationRepository {
	return &CustomizationRepository{DB: db}
}

func (r *CustomizationRepository) GroupsByOrg(ctx context.Context, orgID string) ([]entity.CustomizationGroup, error) {
	var groups []entity.CustomizationGroup
	err := r.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("seq asc").
		Find(&groups).Error
	return groups, err
}

func (r *CustomizationRepository) GroupByID(ctx context.Context, id string) (*entity.CustomizationGroup, error) {
	var group entity.CustomizationGroup
	err := r.DB.WithContext(ctx).First(&group, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("customization group %s: %w", id, apperr.ErrNoRecordFound)
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *CustomizationRepository) CreateGroup(ctx context.Context, group *entity.CustomizationGroup) error {
	return r.DB.WithContext(ctx).Create(group).Error
}

func (r *CustomizationRepository) UpdateGroup(ctx context.Context, id string, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.CustomizationGroup{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CustomizationRepository) DeleteGroup(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Delete(&entity.CustomizationGroup{}, "id = ?", id).Error
}

// MappingsByCustomization returns every mapping row for one
// customization product.
func (r *CustomizationRepository) MappingsByCustomization(ctx context.Context, productID string) ([]entity.CustomizationGroupMapping, error) {
	var mappings []entity.CustomizationGroupMapping
	err := r.DB.WithContext(ctx).
		Where("customization_id = ?", productID).
		Order("created_at asc").
		Find(&mappings).Error
	return mappings, err
}

// ReplaceMappings swaps out all mapping rows of a customization product
// in one transaction.
func (r *CustomizationRepository) ReplaceMappings(ctx context.Context, productID string, mappings []entity.CustomizationGroupMapping) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.CustomizationGroupMapping{}, "customization_id = ?", productID).Error; err != nil {
			return err
		}
		if len(mappings) == 0 {
			return nil
		}
		return tx.Create(&mappings).Error
	})
}
