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

type HealthChecksRepository struct {
	db *mongo.Database
}

func NewHealthChecksRepository(db *mongo.Database) *HealthChecksRepository {
	return &HealthChecksRepository{db: db}
}

// Create сохраняет новую запись о проверке здоровья.
// Коллекция append-only: обновления и удаления не предусмотрены.
func (r *HealthChecksRepository) Create(ctx context.Context, userID string, memberID, status, note *string) (*models.HealthCheck, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	c := models.HealthCheck{
		UserID:    userID,
		MemberID:  memberID,
		Status:    status,
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.db.Collection("health_checks").InsertOne(ctx, c)
	if err != nil {
		return nil, storeErr(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, serr.ErrInternal
	}
	c.ID = id
	return &c, nil
}

// ListByMember возвращает проверки конкретного члена семьи,
// принадлежащие пользователю.
func (r *HealthChecksRepository) ListByMember(ctx context.Context, userID, memberID string) ([]models.HealthCheck, error) {
	if r.db == nil {
		return nil, serr.ErrStoreUnavailable
	}

	cur, err := r.db.Collection("health_checks").Find(ctx, bson.M{"user_id": userID, "member_id": memberID})
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	checks := []models.HealthCheck{}
	if err := cur.All(ctx, &checks); err != nil {
		return nil, storeErr(err)
	}
	return checks, nil
}
