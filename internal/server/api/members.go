package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekorolkova/famhealth/internal/server/middleware"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
	"github.com/ekorolkova/famhealth/internal/shared/models"
)

// AddMemberRequest тело запроса добавления члена семьи.
// Оба поля опциональны и сохраняются как пришли.
type AddMemberRequest struct {
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
}

// ListMembers возвращает всех членов семьи текущего пользователя.
//
// ListMembers godoc
// @Summary      List family members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.MembersResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/members [get]
func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	list, err := h.Svc.Members.List(r.Context(), userID)
	if err != nil {
		h.writeListError(w, err, userID, "list members failed")
		return
	}

	resp := models.MembersResponse{Members: make([]models.Member, 0, len(list))}
	for _, m := range list {
		resp.Members = append(resp.Members, models.Member{
			ID:           m.ID.Hex(),
			Name:         m.Name,
			Relationship: m.Relationship,
		})
	}

	WriteJSON(w, http.StatusOK, resp)
}

// AddMember добавляет члена семьи.
//
// AddMember godoc
// @Summary      Add a family member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddMemberRequest true "Member fields"
// @Success      201 {object} models.MemberResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/members [post]
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	m, err := h.Svc.Members.Add(r.Context(), userID, req.Name, req.Relationship)
	if err != nil {
		h.writeListError(w, err, userID, "add member failed")
		return
	}

	WriteJSON(w, http.StatusCreated, models.MemberResponse{
		Member: models.CreatedMember{ID: m.ID.Hex(), Name: m.Name},
	})
}

// DeleteMember удаляет члена семьи по id из URL.
//
// Удаление несуществующего или чужого id — такой же успех:
// ответ не различает "удалено" и "нечего удалять".
//
// DeleteMember godoc
// @Summary      Delete a family member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Member ID"
// @Success      200 {object} models.SuccessResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/members/{id} [delete]
func (h *Handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.Svc.Members.Remove(r.Context(), userID, id); err != nil {
		h.writeListError(w, err, userID, "delete member failed")
		return
	}

	WriteJSON(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// writeListError — общий маппинг ошибок CRUD-хендлеров.
func (h *Handler) writeListError(w http.ResponseWriter, err error, userID, msg string) {
	if errors.Is(err, serr.ErrStoreUnavailable) {
		WriteError(w, http.StatusServiceUnavailable, err)
		return
	}
	h.Log.Logger.Sugar().Errorw(msg, "error", err, "user_id", userID)
	WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
}
