package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a decoration package offered on the marketplace.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"         json:"_id"`
	Name        string             `bson:"name"                  json:"name"`
	Category    string             `bson:"category"              json:"category"`
	Price       float64            `bson:"price"                 json:"price"`
	Unit        string             `bson:"unit,omitempty"        json:"unit,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty"       json:"image,omitempty"`
	CreatedBy   string             `bson:"createdBy,omitempty"   json:"createdBy,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"             json:"createdAt"`
}

type CreateServiceInput struct {
	Name        string
	Category    string
	Price       float64
	Unit        string
	Description string
	Image       string
	CreatedBy   string
}
