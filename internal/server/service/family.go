package service

import (
	"context"
	"errors"

	"github.com/ekorolkova/famhealth/internal/server/models"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
)

// DefaultFamilyName — имя семьи, создаваемой автоматически.
const DefaultFamilyName = "My Family"

// FamilyService реализует ленивую модель семьи: семья не создаётся при
// регистрации, а появляется при первом обращении.
type FamilyService struct {
	families FamiliesRepo
}

// NewFamilyService создаёт FamilyService.
func NewFamilyService(families FamiliesRepo) *FamilyService {
	return &FamilyService{families: families}
}

// Get возвращает семью пользователя, создавая её при отсутствии.
//
// Инвариант: на пользователя приходится не более одной семьи —
// создание выполняется только когда выборка вернула ErrNotFound,
// повторный вызов вернёт ту же запись.
func (s *FamilyService) Get(ctx context.Context, userID string) (*models.Family, error) {
	f, err := s.families.GetByOwner(ctx, userID)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, serr.ErrNotFound) {
		return nil, err
	}
	return s.families.Create(ctx, userID, DefaultFamilyName)
}
