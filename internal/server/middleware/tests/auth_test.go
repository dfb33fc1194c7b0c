package tests

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ekorolkova/famhealth/internal/server/middleware"
)

// Вспомогательная функция для JWT
func makeToken(t *testing.T, key, sub, iss, aud string, exp time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   sub,
		Issuer:    iss,
		Audience:  []string{aud},
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// Успех
func TestAuthMiddleware_OK(t *testing.T) {
	key := "secret"
	v := middleware.NewJWTVerifier(key, "issuer", "aud")

	userID := uuid.NewString()

	token := makeToken(
		t,
		key,
		userID,
		"issuer",
		"aud",
		time.Now().Add(time.Minute),
	)

	called := false
	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		uid, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			t.Fatal("user id not found in context")
		}

		if uid != userID {
			t.Fatalf("unexpected user id: %v", uid)
		}

		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if !called {
		t.Fatal("handler was not called")
	}
}

// Токен без префикса Bearer тоже принимается
func TestAuthMiddleware_NoBearerPrefix(t *testing.T) {
	key := "secret"
	v := middleware.NewJWTVerifier(key, "", "")

	token := makeToken(t, key, "user-1", "", "", time.Now().Add(time.Minute))

	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

// Нет токена
func TestAuthMiddleware_MissingToken(t *testing.T) {
	v := middleware.NewJWTVerifier("key", "", "")

	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON error body, got Content-Type %q", ct)
	}
}

// Токен истёк
func TestAuthMiddleware_Expired(t *testing.T) {
	key := "secret"
	v := middleware.NewJWTVerifier(key, "", "")

	token := makeToken(
		t,
		key,
		"user",
		"",
		"",
		time.Now().Add(-time.Minute),
	)

	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

// Не та подпись
func TestAuthMiddleware_WrongKey(t *testing.T) {
	v := middleware.NewJWTVerifier("right-key", "", "")

	token := makeToken(t, "wrong-key", "user", "", "", time.Now().Add(time.Minute))

	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

// Чужой issuer
func TestAuthMiddleware_WrongIssuer(t *testing.T) {
	key := "secret"
	v := middleware.NewJWTVerifier(key, "famhealth", "")

	token := makeToken(t, key, "user", "other-service", "", time.Now().Add(time.Minute))

	handler := v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

// Проверка форматов принимаемого токена
func TestExtractBearer(t *testing.T) {
	tests := []struct {
		hdr  string
		want string
	}{
		{"Bearer token", "token"},
		{"bearer token", "token"},
		{"Bearer    token", "token"},
		{"token", "token"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := middleware.ExtractBearer(tt.hdr); got != tt.want {
			t.Errorf("ExtractBearer(%q) = %q, want %q", tt.hdr, got, tt.want)
		}
	}
}
