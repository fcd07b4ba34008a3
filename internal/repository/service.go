package repository

import (
	"context"
	"fmt"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ServiceRepository struct {
	coll     *mongo.Collection
	strategy retry.Strategy
}

func NewServiceRepo(db *mongo.Database) *ServiceRepository {
	return &ServiceRepository{
		coll:     db.Collection(servicesCollection),
		strategy: defaultStrategy(),
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert service: %w", err)
	}

	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Service, error) {
	var s domain.Service
	found, err := findOne(ctx, r.coll, r.strategy, byID(id), &s)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if !found {
		return nil, domain.ErrServiceNotFound
	}

	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]*domain.Service, error) {
	services, err := findMany[domain.Service](ctx, r.coll, r.strategy, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	return services, nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete service: %w", err)
	}

	return deleteResult(res), nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.coll, r.strategy)
}
