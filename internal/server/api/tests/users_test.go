package tests

import (
	"net/http"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/ekorolkova/famhealth/internal/server/models"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
	shared "github.com/ekorolkova/famhealth/internal/shared/models"
)

// /api/health отвечает 200 всегда, даже когда база лежит
func TestHealth_AlwaysOK(t *testing.T) {
	router, _ := newTestServer(t, false)

	rec := doJSON(t, router, http.MethodGet, "/api/health", "", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp shared.StatusResponse
	decodeBody(t, rec, &resp)
	if resp.Status != "ok" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestMe_OK(t *testing.T) {
	router, m := newTestServer(t, true)

	created := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	u := &models.User{
		ID:        primitive.NewObjectID(),
		Email:     "test@mail.com",
		Name:      "Test User",
		CreatedAt: created,
	}

	m.Users.EXPECT().
		GetByID(gomock.Any(), u.ID.Hex()).
		Return(u, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", accessToken(t, u.ID.Hex()), nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp shared.User
	decodeBody(t, rec, &resp)

	if resp.ID != u.ID.Hex() || resp.Email != u.Email || resp.Name != u.Name {
		t.Fatalf("unexpected profile: %+v", resp)
	}
	if resp.CreatedAt != "2026-01-15T10:30:00Z" {
		t.Fatalf("expected RFC3339 created_at, got %q", resp.CreatedAt)
	}
}

func TestMe_NoToken(t *testing.T) {
	router, _ := newTestServer(t, true)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", "", nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if got := detailOf(t, rec); got != "invalid token" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

// Пользователь удалён после выпуска токена
func TestMe_UserGone(t *testing.T) {
	router, m := newTestServer(t, true)

	userID := primitive.NewObjectID().Hex()

	m.Users.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(nil, serr.ErrNotFound)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", accessToken(t, userID), nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := detailOf(t, rec); got != "user not found" {
		t.Fatalf("unexpected detail: %q", got)
	}
}

// 503 выигрывает у 401: без токена и с лежащей базой — 503
func TestProtected_StoreDownBeatsAuth(t *testing.T) {
	router, _ := newTestServer(t, false)

	rec := doJSON(t, router, http.MethodGet, "/api/users/me", "", nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
