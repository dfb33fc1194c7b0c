// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и получение
// информации о текущем пользователе.
package api

import "github.com/ekorolkova/famhealth/internal/shared/models"

// RegisterRequest описывает тело запроса регистрации пользователя.
//
// Email, Password и Name передаются в JSON формате в эндпоинт /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest описывает тело запроса входа пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/auth/register и возвращает access токен.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(email, password, name string) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.PostJSON("/api/auth/register", RegisterRequest{Email: email, Password: password, Name: name}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /api/auth/login. В случае ошибки
// возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (models.TokenResponse, error) {
	var resp models.TokenResponse
	err := c.PostJSON("/api/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Me запрашивает информацию о текущем пользователе.
//
// Метод отправляет GET запрос на /api/users/me и использует accessToken для авторизации.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Me(accessToken string) (models.User, error) {
	var resp models.User
	err := c.GetJSON("/api/users/me", &resp, accessToken)
	return resp, err
}
