// HTTP-хендлеры регистрации и логина
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ekorolkova/famhealth/internal/server/crypto"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
	"github.com/ekorolkova/famhealth/internal/shared/models"
)

// RegisterRequest описывает тело запроса регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register обрабатывает регистрацию пользователя.
//
// Ответы:
//   - 201 Created: регистрация успешна, в теле access токен;
//   - 400 Bad Request: неверный JSON, пропущенные поля, невалидный email
//     или email уже занят;
//   - 503 Service Unavailable: база недоступна;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput), errors.Is(err, serr.ErrInvalidEmail):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrStoreUnavailable):
			WriteError(w, http.StatusServiceUnavailable, err)
		default:
			h.Log.Logger.Sugar().Error("register failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, models.TokenResponse{
		AccessToken: token,
		TokenType:   crypto.TokenType,
	})
}

// Login обрабатывает вход пользователя и выдачу access токена.
//
// Ответы:
//   - 200 OK: успешный вход;
//   - 400 Bad Request: неверный JSON или пропущенные поля;
//   - 401 Unauthorized: неверные учётные данные (без уточнения,
//     существует ли такой email);
//   - 503 Service Unavailable: база недоступна;
//   - 500 Internal Server Error: прочие ошибки.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, err)
		case errors.Is(err, serr.ErrStoreUnavailable):
			WriteError(w, http.StatusServiceUnavailable, err)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   crypto.TokenType,
	})
}
