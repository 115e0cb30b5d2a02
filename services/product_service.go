package services

import (
	"context"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/pkg/apperr"
	"github.com/SciSaif/seller-app/repository"
	"github.com/SciSaif/seller-app/storage"
)

type ProductService struct {
	repo   *repository.ProductRepository
	assets storage.AssetResolver
}

func NewProductService(repo *repository.ProductRepository, assets storage.AssetResolver) *ProductService {
	return &ProductService{repo: repo, assets: assets}
}

func (s *ProductService) ListByOrg(ctx context.Context, orgID string) ([]entity.Product, error) {
	return s.repo.FindByOrg(ctx, orgID)
}

// Get returns one product with its image paths resolved to signed URLs.
func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for i, path := range product.Images {
		url, err := s.assets.Resolve(ctx, path)
		if apperr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		product.Images[i] = url
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, product *entity.Product) error {
	return s.repo.Create(ctx, product)
}

func (s *ProductService) Update(ctx context.Context, id string, updates map[string]any) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, updates)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) SetPublished(ctx context.Context, id string, published bool) error {
	return s.repo.Update(ctx, id, map[string]any{"published": published})
}
