package api

import (
	"errors"
	"net/http"

	"github.com/ekorolkova/famhealth/internal/server/middleware"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
	"github.com/ekorolkova/famhealth/internal/shared/models"
)

// GetFamily возвращает семью текущего пользователя.
//
// Если семьи ещё нет — она создаётся с именем "My Family",
// поэтому успешный ответ всегда 200 (404 у этого эндпоинта не бывает).
//
// GetFamily godoc
// @Summary      Get (or lazily create) the user's family
// @Tags         family
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.FamilyResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/family [get]
func (h *Handler) GetFamily(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	f, err := h.Svc.Family.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, serr.ErrStoreUnavailable) {
			WriteError(w, http.StatusServiceUnavailable, err)
			return
		}
		h.Log.Logger.Sugar().Errorw("get family failed", "error", err, "user_id", userID)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, models.FamilyResponse{
		Family: models.Family{ID: f.ID.Hex(), Name: f.Name},
	})
}
