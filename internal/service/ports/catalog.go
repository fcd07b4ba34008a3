package ports

import (
	"context"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceRepo interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}
