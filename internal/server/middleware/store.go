package middleware

import (
	"encoding/json"
	"net/http"
)

// StoreGuard возвращает middleware, которое первым делом проверяет
// доступность хранилища и отвечает 503, не доходя ни до проверки
// токена, ни до самих хендлеров.
//
// available — функция-проба (обычно замыкание над config.GetDB),
// чтобы middleware не зависело от способа подключения базы
// и в тестах подменялось тривиально.
func StoreGuard(available func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !available() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{"detail": "database connection failed"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
