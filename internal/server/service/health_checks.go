package service

import (
	"context"

	"github.com/ekorolkova/famhealth/internal/server/models"
)

// HealthChecksService реализует append-only журнал проверок здоровья.
type HealthChecksService struct {
	checks HealthChecksRepo
}

// NewHealthChecksService создаёт HealthChecksService.
func NewHealthChecksService(checks HealthChecksRepo) *HealthChecksService {
	return &HealthChecksService{checks: checks}
}

// Add добавляет запись о проверке здоровья члена семьи.
func (s *HealthChecksService) Add(ctx context.Context, userID string, memberID, status, note *string) (*models.HealthCheck, error) {
	return s.checks.Create(ctx, userID, memberID, status, note)
}

// ListByMember возвращает проверки конкретного члена семьи.
func (s *HealthChecksService) ListByMember(ctx context.Context, userID, memberID string) ([]models.HealthCheck, error) {
	return s.checks.ListByMember(ctx, userID, memberID)
}
