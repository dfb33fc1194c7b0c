// В этом файле описаны методы клиента для работы с заметками.
package api

import "github.com/ekorolkova/famhealth/internal/shared/models"

// AddNoteRequest описывает тело запроса создания заметки.
type AddNoteRequest struct {
	Content *string `json:"content,omitempty"`
	Type    *string `json:"type,omitempty"`
}

// AddNote создаёт заметку.
//
// Метод отправляет POST запрос на /api/notes и возвращает идентификатор заметки.
func (c *Client) AddNote(content, noteType *string, accessToken string) (models.CreatedNote, error) {
	var resp models.NoteResponse
	err := c.PostJSON("/api/notes", AddNoteRequest{Content: content, Type: noteType}, &resp, accessToken)
	return resp.Note, err
}

// ListNotes возвращает все заметки текущего пользователя.
func (c *Client) ListNotes(accessToken string) ([]models.Note, error) {
	var resp models.NotesResponse
	err := c.GetJSON("/api/notes", &resp, accessToken)
	return resp.Notes, err
}
