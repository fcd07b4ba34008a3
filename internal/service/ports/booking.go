package ports

import (
	"context"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error)
	List(ctx context.Context, userEmail string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error)
	Confirm(ctx context.Context, id primitive.ObjectID, decorator string) (domain.UpdateResult, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (domain.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
	CountByServiceCategory(ctx context.Context) ([]domain.CategoryCount, error)
}
