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

type FamiliesRepository struct {
	db *mongo.Database
}

func NewFamiliesRepository(db *mongo.Database) *FamiliesRepository {
	return &FamiliesRepository{db: db}
}

// GetByOwner возвращает семью пользователя или ErrNotFound.
func (r *FamiliesRepository) GetByOwner(ctx context.Context, userID string) (*models.Family, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	var f models.Family
	err := r.db.Collection("families").FindOne(ctx, bson.M{"user_id": userID}).Decode(&f)
	if err != nil {
		return nil, storeErr(err)
	}
	return &f, nil
}

// Create создаёт семью для пользователя.
func (r *FamiliesRepository) Create(ctx context.Context, userID, name string) (*models.Family, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	f := models.Family{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.db.Collection("families").InsertOne(ctx, f)
	if err != nil {
		return nil, storeErr(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, serr.ErrInternal
	}
	f.ID = id
	return &f, nil
}
