package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ekorolkova/famhealth/internal/server/middleware"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
	"github.com/ekorolkova/famhealth/internal/shared/models"
)

// Me возвращает профиль текущего пользователя.
//
// Пользователь определяется по JWT-токену (middleware).
// Хэш пароля в ответ не попадает никогда.
//
// Me godoc
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      404 {object} api.ErrorResponse "User not found"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	u, err := h.Svc.Auth.Me(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, errors.New("user not found"))
		case errors.Is(err, serr.ErrStoreUnavailable):
			WriteError(w, http.StatusServiceUnavailable, err)
		default:
			h.Log.Logger.Sugar().Errorw("get me failed", "error", err, "user_id", userID)
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.User{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// Health — проверка живости сервера.
// Отвечает 200 всегда, состояние базы не проверяется.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}
