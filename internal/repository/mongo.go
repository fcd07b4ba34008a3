package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/domain"
	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	servicesCollection = "services"
	bookingsCollection = "bookings"
	paymentsCollection = "payments"
)

// Reads are retried, writes are not: a retried insert could land twice.
func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func byID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}

func findOne(ctx context.Context, coll *mongo.Collection, strategy retry.Strategy, filter any, out any) (bool, error) {
	found := true
	err := retry.Do(func() error {
		err := coll.FindOne(ctx, filter).Decode(out)
		if errors.Is(err, mongo.ErrNoDocuments) {
			found = false
			return nil
		}
		return err
	}, strategy)
	if err != nil {
		return false, err
	}
	return found, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, strategy retry.Strategy, filter any, opts ...*options.FindOptions) ([]*T, error) {
	var res []*T
	err := retry.Do(func() error {
		cur, err := coll.Find(ctx, filter, opts...)
		if err != nil {
			return err
		}
		res = make([]*T, 0)
		return cur.All(ctx, &res)
	}, strategy)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func estimatedCount(ctx context.Context, coll *mongo.Collection, strategy retry.Strategy) (int64, error) {
	var n int64
	err := retry.Do(func() error {
		var err error
		n, err = coll.EstimatedDocumentCount(ctx)
		return err
	}, strategy)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	return n, nil
}

func updateResult(res *mongo.UpdateResult) domain.UpdateResult {
	if res == nil {
		return domain.UpdateResult{}
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}
}

func deleteResult(res *mongo.DeleteResult) domain.DeleteResult {
	if res == nil {
		return domain.DeleteResult{}
	}
	return domain.DeleteResult{DeletedCount: res.DeletedCount}
}

// EnsureIndexes creates the indexes the repositories rely on. It is safe to
// call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	_, err = db.Collection(bookingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}},
		Options: options.Index().SetName("bookings_user_email"),
	})
	if err != nil {
		return fmt.Errorf("bookings email index: %w", err)
	}

	_, err = db.Collection(paymentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("payments_email"),
	})
	if err != nil {
		return fmt.Errorf("payments email index: %w", err)
	}

	return nil
}
