package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
)

// CustomMenuRepository covers custom menus, their timings and their
// product assignments.
type CustomMenuRepository struct {
	DB *gorm.DB
}

func NewCustomMenuRepository(db *gorm.DB) *CustomMenuRepository {
	return &CustomMenuRepository{DB: db}
}

func (r *CustomMenuRepository) MenusByOrg(ctx context.Context, orgID string) ([]entity.CustomMenu, error) {
	var menus []entity.CustomMenu
	err := r.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("seq asc").
		Find(&menus).Error
	return menus, err
}

func (r *CustomMenuRepository) MenuByID(ctx context.Context, id string) (*entity.CustomMenu, error) {
	var menu entity.CustomMenu
	err := r.DB.WithContext(ctx).First(&menu, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("custom menu %s: %w", id, apperr.ErrNoRecordFound)
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *CustomMenuRepository) CreateMenu(ctx context.Context, menu *entity.CustomMenu) error {
	return r.DB.WithContext(ctx).Create(menu).Error
}

func (r *CustomMenuRepository) UpdateMenu(ctx context.Context, id string, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.CustomMenu{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CustomMenuRepository) DeleteMenu(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.CustomMenuTiming{}, "custom_menu_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.CustomMenuProduct{}, "custom_menu_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.CustomMenu{}, "id = ?", id).Error
	})
}

func (r *CustomMenuRepository) TimingsByOrg(ctx context.Context, orgID string) ([]entity.CustomMenuTiming, error) {
	var timings []entity.CustomMenuTiming
	err := r.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Find(&timings).Error
	return timings, err
}

func (r *CustomMenuRepository) SetTiming(ctx context.Context, timing *entity.CustomMenuTiming) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.CustomMenuTiming{}, "custom_menu_id = ?", timing.CustomMenuID).Error; err != nil {
			return err
		}
		return tx.Create(timing).Error
	})
}

// ProductsByOrg returns the org's menu membership rows.
func (r *CustomMenuRepository) ProductsByOrg(ctx context.Context, orgID string) ([]entity.CustomMenuProduct, error) {
	var rows []entity.CustomMenuProduct
	err := r.DB.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("seq asc").
		Find(&rows).Error
	return rows, err
}

func (r *CustomMenuRepository) AssignProduct(ctx context.Context, row *entity.CustomMenuProduct) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *CustomMenuRepository) UnassignProduct(ctx context.Context, menuID, productID string) error {
	return r.DB.WithContext(ctx).
		Delete(&entity.CustomMenuProduct{}, "custom_menu_id = ? AND product_id = ?", menuID, productID).Error
}
