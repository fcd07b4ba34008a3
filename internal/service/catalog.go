package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/service/ports"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogService struct {
	repo ports.ServiceRepo
}

func NewCatalogService(repo ports.ServiceRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(ctx context.Context, input domain.CreateServiceInput) (*domain.Service, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	svc := &domain.Service{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Unit:        input.Unit,
		Description: input.Description,
		Image:       input.Image,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	return svc, nil
}

func (s *CatalogService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	return s.repo.Delete(ctx, id)
}
