package service

import (
	"context"

	"github.com/ekorolkova/famhealth/internal/server/models"
)

// NotesService реализует append-only заметки пользователя.
type NotesService struct {
	notes NotesRepo
}

// NewNotesService создаёт NotesService.
func NewNotesService(notes NotesRepo) *NotesService {
	return &NotesService{notes: notes}
}

// Add добавляет заметку.
func (s *NotesService) Add(ctx context.Context, userID string, content, noteType *string) (*models.Note, error) {
	return s.notes.Create(ctx, userID, content, noteType)
}

// List возвращает все заметки пользователя.
func (s *NotesService) List(ctx context.Context, userID string) ([]models.Note, error) {
	return s.notes.List(ctx, userID)
}
