package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingID     primitive.ObjectID `bson:"bookingId"     json:"bookingId"`
	Email         string             `bson:"email"         json:"email"`
	Price         float64            `bson:"price"         json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Date          time.Time          `bson:"date"          json:"date"`
}

type RecordPaymentInput struct {
	BookingID     primitive.ObjectID
	Email         string
	Price         float64
	TransactionID string
}

// PaymentRecord is what the coordinator reports back: the inserted payment
// and the outcome of the booking update that followed it.
type PaymentRecord struct {
	Payment *Payment
	Update  UpdateResult
}
