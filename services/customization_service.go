package services

import (
	"context"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/repository"
)

type CustomizationService struct {
	repo *repository.CustomizationRepository
}

func NewCustomizationService(repo *repository.CustomizationRepository) *CustomizationService {
	return &CustomizationService{repo: repo}
}

func (s *CustomizationService) ListGroups(ctx context.Context, orgID string) ([]entity.CustomizationGroup, error) {
	return s.repo.GroupsByOrg(ctx, orgID)
}

func (s *CustomizationService) GetGroup(ctx context.Context, id string) (*entity.CustomizationGroup, error) {
	return s.repo.GroupByID(ctx, id)
}

func (s *CustomizationService) CreateGroup(ctx context.Context, group *entity.CustomizationGroup) error {
	return s.repo.CreateGroup(ctx, group)
}

func (s *CustomizationService) UpdateGroup(ctx context.Context, id string, updates map[string]any) error {
	if _, err := s.repo.GroupByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateGroup(ctx, id, updates)
}

func (s *CustomizationService) DeleteGroup(ctx context.Context, id string) error {
	return s.repo.DeleteGroup(ctx, id)
}

func (s *CustomizationService) ListMappings(ctx context.Context, productID string) ([]entity.CustomizationGroupMapping, error) {
	return s.repo.MappingsByCustomization(ctx, productID)
}

// SetMappings replaces a customization product's group mappings.
func (s *CustomizationService) SetMappings(ctx context.Context, productID string, mappings []entity.CustomizationGroupMapping) error {
	for i := range mappings {
		mappings[i].CustomizationID = productID
	}
	return s.repo.ReplaceMappings(ctx, productID, mappings)
}
