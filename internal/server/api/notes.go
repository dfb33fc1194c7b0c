package api

import (
	"encoding/json"
	"net/http"

	"github.com/ekorolkova/famhealth/internal/server/middleware"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
	"github.com/ekorolkova/famhealth/internal/shared/models"
)

// AddNoteRequest тело запроса создания заметки.
// Оба поля опциональны и сохраняются как пришли.
type AddNoteRequest struct {
	Content *string `json:"content"`
	Type    *string `json:"type"`
}

// AddNote добавляет заметку пользователя.
//
// AddNote godoc
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddNoteRequest true "Note fields"
// @Success      201 {object} models.NoteResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/notes [post]
func (h *Handler) AddNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	n, err := h.Svc.Notes.Add(r.Context(), userID, req.Content, req.Type)
	if err != nil {
		h.writeListError(w, err, userID, "add note failed")
		return
	}

	WriteJSON(w, http.StatusCreated, models.NoteResponse{
		Note: models.CreatedNote{ID: n.ID.Hex()},
	})
}

// ListNotes возвращает все заметки пользователя.
//
// ListNotes godoc
// @Summary      List notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.NotesResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/notes [get]
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	list, err := h.Svc.Notes.List(r.Context(), userID)
	if err != nil {
		h.writeListError(w, err, userID, "list notes failed")
		return
	}

	resp := models.NotesResponse{Notes: make([]models.Note, 0, len(list))}
	for _, n := range list {
		resp.Notes = append(resp.Notes, models.Note{
			ID:      n.ID.Hex(),
			Content: n.Content,
		})
	}

	WriteJSON(w, http.StatusOK, resp)
}
