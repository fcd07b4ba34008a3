package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"  json:"_id"`
	UserEmail     string             `bson:"userEmail"      json:"userEmail"`
	UserName      string             `bson:"userName"       json:"userName"`
	ServiceID     primitive.ObjectID `bson:"serviceId"      json:"serviceId"`
	ServiceName   string             `bson:"serviceName"    json:"serviceName"`
	Price         float64            `bson:"price"          json:"price"`
	BookingDate   string             `bson:"bookingDate"    json:"bookingDate"`
	Location      string             `bson:"location"       json:"location"`
	Status        BookingStatus      `bson:"status"         json:"status"`
	Decorator     *string            `bson:"decorator"      json:"decorator"`
	PaymentStatus PaymentStatus      `bson:"paymentStatus"  json:"paymentStatus"`
	TransactionID *string            `bson:"transactionId"  json:"transactionId"`
	CreatedAt     time.Time          `bson:"createdAt"      json:"createdAt"`
}

type CreateBookingInput struct {
	UserEmail   string
	UserName    string
	ServiceID   primitive.ObjectID
	ServiceName string
	Price       float64
	BookingDate string
	Location    string
}
