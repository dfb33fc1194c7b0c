// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Хранилище (MongoDB) недоступно — соединения нет или оно потеряно
	ErrStoreUnavailable = errors.New("database connection failed")
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("missing required fields")
	// Неверный формат email
	ErrInvalidEmail = errors.New("invalid email")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid email or password")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован (нет токена / токен невалиден или просрочен)
	ErrUnauthorized = errors.New("invalid token")
	// Ресурс уже существует (email уже зарегистрирован)
	ErrAlreadyExists = errors.New("email already registered")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)
