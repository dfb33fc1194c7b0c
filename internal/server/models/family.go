package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Family — документ коллекции families.
//
// UserID — владелец (hex ObjectID пользователя из claims.Subject).
// На одного пользователя приходится не более одной семьи.
type Family struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
