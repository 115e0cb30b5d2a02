package services

import (
	"context"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/repository"
	"github.com/SciSaif/seller-app/storage"
)

type CustomMenuService struct {
	repo   *repository.CustomMenuRepository
	assets storage.AssetResolver
}

func NewCustomMenuService(repo *repository.CustomMenuRepository, assets storage.AssetResolver) *CustomMenuService {
	return &CustomMenuService{repo: repo, assets: assets}
}

func (s *CustomMenuService) ListByOrg(ctx context.Context, orgID string) ([]entity.CustomMenu, error) {
	return s.repo.MenusByOrg(ctx, orgID)
}

func (s *CustomMenuService) Get(ctx context.Context, id string) (*entity.CustomMenu, error) {
	menu, err := s.repo.MenuByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for i, path := range menu.Images {
		url, err := s.assets.Resolve(ctx, path)
		if apperr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		menu.Images[i] = url
	}
	return menu, nil
}

func (s *CustomMenuService) Create(ctx context.Context, menu *entity.CustomMenu) error {
	return s.repo.CreateMenu(ctx, menu)
}

func (s *CustomMenuService) Update(ctx context.Context, id string, updates map[string]any) error {
	if _, err := s.repo.MenuByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateMenu(ctx, id, updates)
}

func (s *CustomMenuService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteMenu(ctx, id)
}

// SetTiming replaces a menu's weekly timing windows.
func (s *CustomMenuService) SetTiming(ctx context.Context, timing *entity.CustomMenuTiming) error {
	menu, err := s.repo.MenuByID(ctx, timing.CustomMenuID)
	if err != nil {
		return err
	}
	timing.OrganizationID = menu.OrganizationID
	return s.repo.SetTiming(ctx, timing)
}

func (s *CustomMenuService) AssignProduct(ctx context.Context, row *entity.CustomMenuProduct) error {
	menu, err := s.repo.MenuByID(ctx, row.CustomMenuID)
	if err != nil {
		return err
	}
	row.OrganizationID = menu.OrganizationID
	return s.repo.AssignProduct(ctx, row)
}

func (s *CustomMenuService) UnassignProduct(ctx context.Context, menuID, productID string) error {
	return s.repo.UnassignProduct(ctx, menuID, productID)
}
