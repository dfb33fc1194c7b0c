// Package models содержит плоские модели HTTP API FamHealth,
// общие для сервера и CLI-клиента.
//
// Модели описывают JSON-контракт эндпоинтов и не содержат
// никакой логики: сервер сериализует их в ответ, клиент
// декодирует ответы в эти же структуры.
package models

// Family — семья пользователя, как она отдаётся наружу.
//
// У каждого пользователя не более одной семьи; создаётся лениво
// при первом GET /api/family с именем по умолчанию "My Family".
type Family struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Member — член семьи (форма списка GET /api/members).
//
// Name и Relationship опциональны: схемной валидации при создании нет,
// отсутствующие поля хранятся и отдаются как null.
type Member struct {
	ID           string  `json:"id"`
	Name         *string `json:"name"`
	Relationship *string `json:"relationship"`
}

// CreatedMember — усечённая форма member в ответе POST /api/members.
type CreatedMember struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// HealthCheck — запись о проверке здоровья (форма списка).
// Записи append-only: обновление и удаление не поддерживаются.
type HealthCheck struct {
	ID     string  `json:"id"`
	Status *string `json:"status"`
}

// CreatedHealthCheck — ответ POST /api/health-checks: только id записи.
type CreatedHealthCheck struct {
	ID string `json:"id"`
}

// Note — заметка пользователя (форма списка, тоже append-only).
type Note struct {
	ID      string  `json:"id"`
	Content *string `json:"content"`
}

// CreatedNote — ответ POST /api/notes: только id записи.
type CreatedNote struct {
	ID string `json:"id"`
}

// User — профиль текущего пользователя (GET /api/users/me).
// Пароль (хэш) наружу не отдаётся никогда.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// TokenResponse — ответ register/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// FamilyResponse — обёртка {"family": {...}} (GET /api/family).
type FamilyResponse struct {
	Family Family `json:"family"`
}

// MembersResponse — ответ списка членов семьи (GET /api/members).
type MembersResponse struct {
	Members []Member `json:"members"`
}

// MemberResponse — обёртка {"member": {...}} (POST /api/members).
type MemberResponse struct {
	Member CreatedMember `json:"member"`
}

// HealthChecksResponse — ответ списка проверок по члену семьи.
type HealthChecksResponse struct {
	HealthChecks []HealthCheck `json:"healthChecks"`
}

// HealthCheckResponse — обёртка {"healthCheck": {...}}.
type HealthCheckResponse struct {
	HealthCheck CreatedHealthCheck `json:"healthCheck"`
}

// NotesResponse — ответ списка заметок (GET /api/notes).
type NotesResponse struct {
	Notes []Note `json:"notes"`
}

// NoteResponse — обёртка {"note": {...}} (POST /api/notes).
type NoteResponse struct {
	Note CreatedNote `json:"note"`
}

// SuccessResponse — простой ответ на удаление: {"success": true}.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// StatusResponse — ответ GET /api/health.
type StatusResponse struct {
	Status string `json:"status"`
}
