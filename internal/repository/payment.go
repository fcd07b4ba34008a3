package repository

import (
	"context"
	"fmt"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentRepository struct {
	coll     *mongo.Collection
	strategy retry.Strategy
}

func NewPaymentRepo(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		coll:     db.Collection(paymentsCollection),
		strategy: defaultStrategy(),
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

// List returns payments for email, or every payment when email is empty.
func (r *PaymentRepository) List(ctx context.Context, email string) ([]*domain.Payment, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	payments, err := findMany[domain.Payment](ctx, r.coll, r.strategy, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}
