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

type UsersRepository struct {
	db *mongo.Database
}

func NewUsersRepository(db *mongo.Database) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет нового пользователя и возвращает hex его ObjectID.
//
// Уникальность email обеспечивается индексом (см. config.EnsureIndexes):
// при дубликате вернётся ErrAlreadyExists, даже если две регистрации
// пришли одновременно.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash, name string) (string, error) {
	if r.db == nil {
		return "", serr.ErrStoreUnavailable
	}

	doc := models.User{
		Email:     email,
		Password:  passwordHash,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.db.Collection("users").InsertOne(ctx, doc)
	if err != nil {
		return "", storeErr(err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", serr.ErrInternal
	}
	return id.Hex(), nil
}

// GetByEmail ищет пользователя по email (точное совпадение, case-sensitive).
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	var u models.User
	err := r.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		return nil, storeErr(err)
	}
	return &u, nil
}

// GetByID ищет пользователя по hex ObjectID.
// Невалидный hex трактуется как "не найдено".
func (r *UsersRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, serr.ErrNotFound
	}

	var u models.User
	err = r.db.Collection("users").FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if err != nil {
		return nil, storeErr(err)
	}
	return &u, nil
}
