package service

import (
	"context"

	"github.com/ekorolkova/famhealth/internal/server/models"
)

// MembersService реализует операции над членами семьи пользователя.
//
// Схемной валидации нет: name и relationship опциональны и
// сохраняются как пришли (в том числе отсутствующими).
type MembersService struct {
	members MembersRepo
}

// NewMembersService создаёт MembersService.
func NewMembersService(members MembersRepo) *MembersService {
	return &MembersService{members: members}
}

// Add добавляет члена семьи.
func (s *MembersService) Add(ctx context.Context, userID string, name, relationship *string) (*models.Member, error) {
	return s.members.Create(ctx, userID, name, relationship)
}

// List возвращает всех членов семьи пользователя.
func (s *MembersService) List(ctx context.Context, userID string) ([]models.Member, error) {
	return s.members.List(ctx, userID)
}

// Remove удаляет члена семьи по id.
// Чужой или несуществующий id — no-op без ошибки.
func (s *MembersService) Remove(ctx context.Context, userID, id string) error {
	return s.members.Delete(ctx, userID, id)
}
