// Серверные модели документов MongoDB
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User — документ коллекции users.
// Password хранит хэш и никогда не сериализуется в JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
