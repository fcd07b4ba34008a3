package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleNone      Role = ""
	RoleDecorator Role = "decorator"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"            json:"_id"`
	Email          string             `bson:"email"                    json:"email"`
	Name           string             `bson:"name,omitempty"           json:"name,omitempty"`
	PhotoURL       string             `bson:"photoURL,omitempty"       json:"photoURL,omitempty"`
	Role           Role               `bson:"role,omitempty"           json:"role,omitempty"`
	TelegramChatID *int64             `bson:"telegramChatId,omitempty" json:"telegramChatId,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"                json:"createdAt"`
}

type CreateUserInput struct {
	Email          string
	Name           string
	PhotoURL       string
	TelegramChatID *int64
}
