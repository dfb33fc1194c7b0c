package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member — документ коллекции members.
// Relationship опционально: фронтенд может его не прислать.
type Member struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       string             `bson:"user_id" json:"user_id"`
	Name         *string            `bson:"name" json:"name"`
	Relationship *string            `bson:"relationship" json:"relationship"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
