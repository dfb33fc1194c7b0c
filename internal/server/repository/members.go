package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ekorolkova/famhealth/internal/server/models"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
)

type MembersRepository struct {
	db *mongo.Database
}

func NewMembersRepository(db *mongo.Database) *MembersRepository {
	return &MembersRepository{db: db}
}

// Create сохраняет нового члена семьи.
// name и relationship опциональны и сохраняются как есть (в том числе nil).
func (r *MembersRepository) Create(ctx context.Context, userID string, name, relationship *string) (*models.Member, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	m := models.Member{
		UserID:       userID,
		Name:         name,
		Relationship: relationship,
		CreatedAt:    time.Now().UTC(),
	}

	res, err := r.db.Collection("members").InsertOne(ctx, m)
	if err != nil {
		return nil, storeErr(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, serr.ErrInternal
	}
	m.ID = id
	return &m, nil
}

// List возвращает всех членов семьи пользователя.
func (r *MembersRepository) List(ctx context.Context, userID string) ([]models.Member, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	cur, err := r.db.Collection("members").Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	members := []models.Member{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, storeErr(err)
	}
	return members, nil
}

// Delete удаляет члена семьи по id, строго в рамках владельца.
//
// Удаление несуществующего или чужого id — no-op без ошибки:
// вызывающий не узнаёт, было ли что удалять. Невалидный hex
// трактуется так же.
func (r *MembersRepository) Delete(ctx context.Context, userID, id string) error {
	if r.db == nil {
		return serr.ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = r.db.Collection("members").DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return storeErr(err)
	}
	return nil
}
