// Package http реализует маршрутизацию HTTP-слоя сервера FamHealth.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - CORS для локальных фронтендов;
//   - логирование выполнения HTTP-запросов;
//   - проверку доступности базы и JWT access-токенов.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ekorolkova/famhealth/internal/server/api"
	"github.com/ekorolkova/famhealth/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Все эндпоинты живут под префиксом /api. Порядок проверок фиксированный:
// сначала доступность базы (503), затем токен (401), затем сам хендлер.
// /api/health — единственный маршрут вне этих проверок.
//
// allowedOrigins — фиксированный allow-list локальных адресов фронтенда,
// storeAvailable — проба доступности хранилища.
func NewRouter(h *api.Handler, allowedOrigins []string, storeAvailable func() bool) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware())
	// кросс-доменные запросы только с локальных адресов фронтенда
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	// добавляем swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		// живость сервера, базу не трогает
		r.Get("/health", h.Health)

		r.Group(func(r chi.Router) {
			// проверка доступности базы раньше всего остального
			r.Use(middleware.StoreGuard(storeAvailable))

			// Публичные пути
			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", h.Register)
				r.Post("/login", h.Login)
			})

			// защищённые пути
			r.Group(func(r chi.Router) {
				// проверка access токена
				r.Use(h.Verifier.AuthMiddleware())

				r.Get("/users/me", h.Me)
				r.Get("/family", h.GetFamily) // создаёт семью при первом обращении

				r.Route("/members", func(r chi.Router) {
					r.Get("/", h.ListMembers)
					r.Post("/", h.AddMember)
					r.Delete("/{id}", h.DeleteMember)
				})

				r.Route("/health-checks", func(r chi.Router) {
					r.Post("/", h.AddHealthCheck)
					r.Get("/{memberId}", h.ListHealthChecks)
				})

				r.Route("/notes", func(r chi.Router) {
					r.Get("/", h.ListNotes)
					r.Post("/", h.AddNote)
				})
			})
		})
	})

	return r
}
