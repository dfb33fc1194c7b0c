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

type NotesRepository struct {
	db *mongo.Database
}

func NewNotesRepository(db *mongo.Database) *NotesRepository {
	return &NotesRepository{db: db}
}

// Create сохраняет новую заметку пользователя.
func (r *NotesRepository) Create(ctx context.Context, userID string, content, noteType *string) (*models.Note, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	n := models.Note{
		UserID:    userID,
		Content:   content,
		Type:      noteType,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.db.Collection("notes").InsertOne(ctx, n)
	if err != nil {
		return nil, storeErr(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, serr.ErrInternal
	}
	n.ID = id
	return &n, nil
}

// List возвращает все заметки пользователя.
func (r *NotesRepository) List(ctx context.Context, userID string) ([]models.Note, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	cur, err := r.db.Collection("notes").Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	notes := []models.Note{}
	if err := cur.All(ctx, &notes); err != nil {
		return nil, storeErr(err)
	}
	return notes, nil
}
