package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/ekorolkova/famhealth/internal/server/config"
	"github.com/ekorolkova/famhealth/internal/server/crypto"
	"github.com/ekorolkova/famhealth/internal/server/models"
	serr "github.com/ekorolkova/famhealth/internal/shared/errors"
)

// emailRe — проверка синтаксиса email. Доставляемость не проверяем.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей
//   - аутентификация (логин)
//   - выпуск access токенов
//   - профиль текущего пользователя (me)
//
// Токены stateless: сессий на сервере нет, logout — это просто
// выбрасывание токена на клиенте.
type AuthService struct {
	users UsersRepo

	pass crypto.Params
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.Params{
			Hasher:     cfg.Password.Hasher,
			BcryptCost: cfg.Password.Bcrypt.Cost,
			Argon2: crypto.Argon2Params{
				Time:      cfg.Password.Argon2.Time,
				MemoryKiB: cfg.Password.Argon2.MemoryKiB,
				Threads:   cfg.Password.Argon2.Threads,
				KeyLen:    cfg.Password.Argon2.KeyLen,
				SaltLen:   cfg.Password.Argon2.SaltLen,
			},
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			AccessTTL:  cfg.Auth.AccessTTL,
		},
	}
}

// Register регистрирует нового пользователя и сразу выдаёт access токен.
//
// Валидация:
//   - email, password и name обязательны
//   - email должен проходить синтаксическую проверку
//
// Email сравнивается с существующими точно (case-sensitive), без
// нормализации. Уникальность гарантирует индекс в базе.
//
// Ошибки:
//   - ErrInvalidInput / ErrInvalidEmail
//   - ErrAlreadyExists — email уже зарегистрирован
//   - ErrStoreUnavailable — база недоступна
func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, error) {
	if email == "" || password == "" || name == "" {
		return "", serr.ErrInvalidInput
	}
	if !emailRe.MatchString(email) {
		return "", serr.ErrInvalidEmail
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return "", serr.ErrInternal
	}

	id, err := s.users.Create(ctx, email, hash, name)
	if err != nil {
		return "", err
	}

	token, err := crypto.NewAccessToken(id, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}

// Login аутентифицирует пользователя и выдаёт access токен.
//
// Поведение:
//   - не раскрывает факт существования email: неизвестный email и
//     неверный пароль дают одну и ту же ошибку;
//   - битый хэш в базе тоже отдаётся как неверные учётные данные.
//
// Ошибки:
//   - ErrInvalidInput
//   - ErrInvalidCredentials
//   - ErrStoreUnavailable
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", serr.ErrInvalidInput
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// не палим существование email
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := crypto.VerifyPassword(password, u.Password)
	if err != nil || !ok {
		return "", serr.ErrInvalidCredentials
	}

	token, err := crypto.NewAccessToken(u.ID.Hex(), s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}

// Me возвращает профиль пользователя по его id из токена.
//
// Ошибки:
//   - ErrNotFound — пользователя нет (например, удалён после выпуска токена)
//   - ErrStoreUnavailable
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}
