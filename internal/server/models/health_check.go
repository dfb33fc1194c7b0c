package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HealthCheck — документ коллекции health_checks (append-only).
type HealthCheck struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id"`
	MemberID  *string            `bson:"member_id" json:"member_id"`
	Status    *string            `bson:"status" json:"status"`
	Note      *string            `bson:"note" json:"note"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
