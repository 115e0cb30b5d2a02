package services

import (
	"context"

	"github.com/SciSaif/seller-app/entity"
	"github.com/SciSaif/seller-app/repository"
)

type OrderService struct {
	repo *repository.OrderRepository
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

func (s *OrderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) ListByOrg(ctx context.Context, orgID string, offset, limit int) ([]entity.Order, int64, error) {
	return s.repo.FindByOrg(ctx, orgID, offset, limit)
}

func (s *OrderService) Create(ctx context.Context, order *entity.Order) error {
	return s.repo.Create(ctx, order)
}

func (s *OrderService) Update(ctx context.Context, id string, updates map[string]any) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, updates)
}
