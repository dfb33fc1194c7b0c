package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note — документ коллекции notes (append-only).
type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Content   *string            `bson:"content" json:"content"`
	Type      *string            `bson:"type" json:"type"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
