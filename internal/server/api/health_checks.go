package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ekorolkova/famhealth/internal/server/middleware"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
	"github.com/ekorolkova/famhealth/internal/shared/models"
)

// AddHealthCheckRequest тело запроса создания проверки здоровья.
// Все поля опциональны и сохраняются как пришли.
type AddHealthCheckRequest struct {
	MemberID *string `json:"memberId"`
	Status   *string `json:"status"`
	Note     *string `json:"note"`
}

// AddHealthCheck добавляет запись о проверке здоровья.
//
// AddHealthCheck godoc
// @Summary      Record a health check
// @Tags         health-checks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddHealthCheckRequest true "Health check fields"
// @Success      201 {object} models.HealthCheckResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/health-checks [post]
func (h *Handler) AddHealthCheck(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	var req AddHealthCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	c, err := h.Svc.HealthChecks.Add(r.Context(), userID, req.MemberID, req.Status, req.Note)
	if err != nil {
		h.writeListError(w, err, userID, "add health check failed")
		return
	}

	WriteJSON(w, http.StatusCreated, models.HealthCheckResponse{
		HealthCheck: models.CreatedHealthCheck{ID: c.ID.Hex()},
	})
}

// ListHealthChecks возвращает проверки конкретного члена семьи.
//
// memberId берётся из URL; выборка всегда дополнительно ограничена
// владельцем — чужие записи сюда не попадут.
//
// ListHealthChecks godoc
// @Summary      List health checks of a member
// @Tags         health-checks
// @Produce      json
// @Security     BearerAuth
// @Param        memberId path string true "Member ID"
// @Success      200 {object} models.HealthChecksResponse
// @Failure      401 {object} api.ErrorResponse "Unauthorized"
// @Failure      503 {object} api.ErrorResponse "Database unavailable"
// @Router       /api/health-checks/{memberId} [get]
func (h *Handler) ListHealthChecks(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, serr.ErrUnauthorized)
		return
	}

	memberID := chi.URLParam(r, "memberId")

	list, err := h.Svc.HealthChecks.ListByMember(r.Context(), userID, memberID)
	if err != nil {
		h.writeListError(w, err, userID, "list health checks failed")
		return
	}

	resp := models.HealthChecksResponse{HealthChecks: make([]models.HealthCheck, 0, len(list))}
	for _, c := range list {
		resp.HealthChecks = append(resp.HealthChecks, models.HealthCheck{
			ID:     c.ID.Hex(),
			Status: c.Status,
		})
	}

	WriteJSON(w, http.StatusOK, resp)
}
