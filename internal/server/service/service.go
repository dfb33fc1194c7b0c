// Package service содержит бизнес-логику приложения (famhealth).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/ekorolkova/famhealth/internal/server/config"
	"github.com/ekorolkova/famhealth/internal/server/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users        UsersRepo
	Families     FamiliesRepo
	Members      MembersRepo
	HealthChecks HealthChecksRepo
	Notes        NotesRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth         *AuthService
	Family       *FamilyService
	Members      *MembersService
	HealthChecks *HealthChecksService
	Notes        *NotesService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и JWT).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:         NewAuthService(repos.Users, cfg),
		Family:       NewFamilyService(repos.Families),
		Members:      NewMembersService(repos.Members),
		HealthChecks: NewHealthChecksService(repos.HealthChecks),
		Notes:        NewNotesService(repos.Notes),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/register/login/me).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash, name string) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// FamiliesRepo — репозиторий семей (не более одной на пользователя).
type FamiliesRepo interface {
	GetByOwner(ctx context.Context, userID string) (*models.Family, error)
	Create(ctx context.Context, userID, name string) (*models.Family, error)
}

// MembersRepo — репозиторий членов семьи.
type MembersRepo interface {
	Create(ctx context.Context, userID string, name, relationship *string) (*models.Member, error)
	List(ctx context.Context, userID string) ([]models.Member, error)
	Delete(ctx context.Context, userID, id string) error
}

// HealthChecksRepo — репозиторий проверок здоровья (append-only).
type HealthChecksRepo interface {
	Create(ctx context.Context, userID string, memberID, status, note *string) (*models.HealthCheck, error)
	ListByMember(ctx context.Context, userID, memberID string) ([]models.HealthCheck, error)
}

// NotesRepo — репозиторий заметок (append-only).
type NotesRepo interface {
	Create(ctx context.Context, userID string, content, noteType *string) (*models.Note, error)
	List(ctx context.Context, userID string) ([]models.Note, error)
}
