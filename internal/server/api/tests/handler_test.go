package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ekorolkova/famhealth/internal/server/api"
	"github.com/ekorolkova/famhealth/internal/server/config"
	"github.com/ekorolkova/famhealth/internal/server/crypto"
	"github.com/ekorolkova/famhealth/internal/server/middleware"
	nethttp "github.com/ekorolkova/famhealth/internal/server/net/http"
	"github.com/ekorolkova/famhealth/internal/server/service"
	svcmocks "github.com/ekorolkova/famhealth/internal/server/service/mocks"
	"github.com/ekorolkova/famhealth/internal/shared/logger"
)

// repoMocks — все моки репозиториев одним набором.
type repoMocks struct {
	Users        *svcmocks.MockUsersRepo
	Families     *svcmocks.MockFamiliesRepo
	Members      *svcmocks.MockMembersRepo
	HealthChecks *svcmocks.MockHealthChecksRepo
	Notes        *svcmocks.MockNotesRepo
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Issuer:    "famhealth",
			Audience:  "famhealth-web",
			AccessTTL: 1 * time.Minute,
			JWT: config.JWTConfig{
				Algorithm:  "HS256",
				SigningKey: "supersecretkeysupersecretkey123456", // >= 32
			},
		},
		Password: config.PasswordConfig{
			Hasher: "bcrypt",
			Bcrypt: config.BcryptConfig{Cost: 4},
		},
	}
}

// newTestServer собирает полный HTTP-стек (роутер + middleware + хендлеры)
// поверх моков репозиториев, как в cmd/server/main.go.
func newTestServer(t *testing.T, storeAvailable bool) (http.Handler, *repoMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &repoMocks{
		Users:        svcmocks.NewMockUsersRepo(ctrl),
		Families:     svcmocks.NewMockFamiliesRepo(ctrl),
		Members:      svcmocks.NewMockMembersRepo(ctrl),
		HealthChecks: svcmocks.NewMockHealthChecksRepo(ctrl),
		Notes:        svcmocks.NewMockNotesRepo(ctrl),
	}

	cfg := testConfig()
	svc := service.NewServices(service.Repositories{
		Users:        m.Users,
		Families:     m.Families,
		Members:      m.Members,
		HealthChecks: m.HealthChecks,
		Notes:        m.Notes,
	}, cfg)

	verifier := middleware.NewJWTVerifier(cfg.Auth.JWT.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	h := api.NewHandler(svc, logger.NewHTTPLogger(), verifier)

	router := nethttp.NewRouter(h, nil, func() bool { return storeAvailable })
	return router, m
}

// accessToken выпускает валидный токен тем же способом, что и сервер.
func accessToken(t *testing.T, userID string) string {
	t.Helper()
	cfg := testConfig()
	token, err := crypto.NewAccessToken(userID, crypto.JWTConfig{
		Issuer:     cfg.Auth.Issuer,
		Audience:   cfg.Auth.Audience,
		SigningKey: cfg.Auth.JWT.SigningKey,
		AccessTTL:  cfg.Auth.AccessTTL,
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e api.ErrorResponse
	decodeBody(t, rec, &e)
	return e.Detail
}
