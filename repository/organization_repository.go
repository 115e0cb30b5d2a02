package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
)

type OrganizationRepository struct {
	DB *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{DB: db}
}

func (r *OrganizationRepository) FindAll(ctx context.Context) ([]entity.Organization, error) {
	var orgs []entity.Organization
	err := r.DB.WithContext(ctx).Order("created_at asc").Find(&orgs).Error
	return orgs, err
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*entity.Organization, error) {
	var org entity.Organization
	err := r.DB.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("organization %s: %w", id, apperr.ErrNoRecordFound)
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByName(ctx context.Context, name string) (*entity.Organization, error) {
	var org entity.Organization
	err := r.DB.WithContext(ctx).First(&org, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("organization %q: %w", name, apperr.ErrNoRecordFound)
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ListParams are the optional organization list filters.
type ListParams struct {
	Name      string
	Mobile    string
	Email     string
	StoreName string
	Offset    int
	Limit     int
}

func (r *OrganizationRepository) List(ctx context.Context, params ListParams) ([]entity.Organization, int64, error) {
	q := r.DB.WithContext(ctx).Model(&entity.Organization{})
	if params.Name != "" {
		q = q.Where("name LIKE ?", "%"+params.Name+"%")
	}
	if params.Mobile != "" {
		q = q.Where("contact_mobile = ?", params.Mobile)
	}
	if params.Email != "" {
		q = q.Where("contact_email = ?", params.Email)
	}
	if params.StoreName != "" {
		// Store details live in a JSON column.
		q = q.Where("json_extract(store_details, '$.name') LIKE ?", "%"+params.StoreName+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var orgs []entity.Organization
	err := q.Order("created_at asc").Offset(params.Offset).Limit(params.Limit).Find(&orgs).Error
	return orgs, count, err
}

func (r *OrganizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	return r.DB.WithContext(ctx).Create(org).Error
}

func (r *OrganizationRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.Organization{}).Where("id = ?", id).Updates(updates).Error
}

func (r *OrganizationRepository) SetStoreDetails(ctx context.Context, id string, details *entity.StoreDetails) error {
	return r.DB.WithContext(ctx).Model(&entity.Organization{}).Where("id = ?", id).
		Update("store_details", details).Error
}
