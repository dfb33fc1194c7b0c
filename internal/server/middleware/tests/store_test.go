package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ekorolkova/famhealth/internal/server/middleware"
)

// База доступна — запрос проходит дальше
func TestStoreGuard_Available(t *testing.T) {
	mw := middleware.StoreGuard(func() bool { return true })

	called := false
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if !called {
		t.Fatal("handler was not called")
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
}

// База недоступна — 503 и до хендлера не доходим
func TestStoreGuard_Unavailable(t *testing.T) {
	mw := middleware.StoreGuard(func() bool { return false })

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["detail"] != "database connection failed" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}
}

// 503 отдаётся раньше проверки токена: запрос без Authorization
// всё равно получает 503, а не 401.
func TestStoreGuard_BeforeAuth(t *testing.T) {
	v := middleware.NewJWTVerifier("key", "", "")
	guard := middleware.StoreGuard(func() bool { return false })

	handler := guard(v.AuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}
