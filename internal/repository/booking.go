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

type BookingRepository struct {
	coll     *mongo.Collection
	strategy retry.Strategy
}

func NewBookingRepo(db *mongo.Database) *BookingRepository {
	return &BookingRepository{
		coll:     db.Collection(bookingsCollection),
		strategy: defaultStrategy(),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	var b domain.Booking
	found, err := findOne(ctx, r.coll, r.strategy, byID(id), &b)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !found {
		return nil, domain.ErrBookingNotFound
	}

	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, userEmail string) ([]*domain.Booking, error) {
	bookings, err := findMany[domain.Booking](ctx, r.coll, r.strategy, bookingFilter(userEmail))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("delete booking: %w", err)
	}

	return deleteResult(res), nil
}

// Confirm assigns a decorator and confirms the booking. Payment status is
// left as it is.
func (r *BookingRepository) Confirm(ctx context.Context, id primitive.ObjectID, decorator string) (domain.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"status":    domain.BookingStatusConfirmed,
		"decorator": decorator,
	}}
	res, err := r.coll.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("confirm booking: %w", err)
	}

	return updateResult(res), nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (domain.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"paymentStatus": domain.PaymentStatusPaid,
		"transactionId": transactionID,
		"status":        domain.BookingStatusConfirmed,
	}}
	res, err := r.coll.UpdateOne(ctx, byID(id), update)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("mark booking paid: %w", err)
	}

	return updateResult(res), nil
}

func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.coll, r.strategy)
}

func (r *BookingRepository) CountByServiceCategory(ctx context.Context) ([]domain.CategoryCount, error) {
	var res []domain.CategoryCount
	err := retry.Do(func() error {
		cur, err := r.coll.Aggregate(ctx, serviceCategoryPipeline())
		if err != nil {
			return err
		}
		res = make([]domain.CategoryCount, 0)
		return cur.All(ctx, &res)
	}, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("aggregate bookings by category: %w", err)
	}

	return res, nil
}

func bookingFilter(userEmail string) bson.M {
	if userEmail == "" {
		return bson.M{}
	}
	return bson.M{"userEmail": userEmail}
}

// serviceCategoryPipeline joins each booking to its service, drops bookings
// whose service no longer exists ($unwind without preserveNull) and counts
// the rest per category.
func serviceCategoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: servicesCollection},
			{Key: "localField", Value: "serviceId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "serviceData"},
		}}},
		{{Key: "$unwind", Value: "$serviceData"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$serviceData.category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}
