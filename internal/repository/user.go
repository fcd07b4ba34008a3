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

type UserRepository struct {
	coll     *mongo.Collection
	strategy retry.Strategy
}

func NewUserRepo(db *mongo.Database) *UserRepository {
	return &UserRepository{
		coll:     db.Collection(usersCollection),
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	found, err := findOne(ctx, r.coll, r.strategy, bson.M{"email": email}, &u)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return nil, domain.ErrUserNotFound
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	users, err := findMany[domain.User](ctx, r.coll, r.strategy, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role domain.Role) (domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("set user role: %w", err)
	}

	return updateResult(res), nil
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}

	return deleteResult(res), nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.coll, r.strategy)
}
