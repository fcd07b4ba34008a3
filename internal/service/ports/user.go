package ports

import (
	"context"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (domain.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}
