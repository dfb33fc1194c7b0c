// Хэширование паролей
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Params — параметры хэширования паролей.
//
// Hasher выбирает алгоритм: bcrypt (по умолчанию) или argon2id.
// Соль в обоих случаях генерируется заново на каждый вызов,
// поэтому два хэша одного пароля никогда не совпадают.
type Params struct {
	Hasher     string // bcrypt|argon2id
	BcryptCost int
	Argon2     Argon2Params
}

// Argon2Params — параметры argon2id.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// HashPassword хэширует пароль выбранным алгоритмом.
//
// Для bcrypt возвращается стандартная строка $2a$...
// Для argon2id — строка формата:
// argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
func HashPassword(password string, p Params) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}

	switch strings.ToLower(p.Hasher) {
	case "", "bcrypt":
		cost := p.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(b), nil

	case "argon2id":
		return hashArgon2id(password, p.Argon2)

	default:
		return "", fmt.Errorf("unknown hasher %q", p.Hasher)
	}
}

// VerifyPassword проверяет пароль против хэша.
//
// Алгоритм определяется по формату самого хэша, поэтому после смены
// password.hasher в конфиге старые учётные записи продолжают работать.
// На несовпадение возвращается (false, nil); ошибка — только на битый формат.
func VerifyPassword(password, encoded string) (bool, error) {
	switch {
	case strings.HasPrefix(encoded, "$2"):
		err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
		if err == nil {
			return true, nil
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err

	case strings.HasPrefix(encoded, "argon2id$"):
		return verifyArgon2id(password, encoded)

	default:
		return false, errors.New("invalid hash format")
	}
}

func hashArgon2id(password string, p Argon2Params) (string, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	encoded := fmt.Sprintf(
		"argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.MemoryKiB, p.Time, p.Threads,
		b64Salt, b64Hash,
	)
	return encoded, nil
}

func verifyArgon2id(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 {
		return false, errors.New("invalid hash format")
	}

	// parts[0] = argon2id
	// parts[1] = v=19
	// parts[2] = m=...,t=...,p=...
	// parts[3] = salt
	// parts[4] = hash

	var memory uint32
	var time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, errors.New("invalid params format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, errors.New("invalid salt")
	}

	wantHash, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, errors.New("invalid hash")
	}

	// argon2.IDKey паникует на t=0, p=0 и keyLen=0 — битый хэш
	// отбрасываем до вызова
	if time < 1 || threads < 1 || len(salt) == 0 || len(wantHash) == 0 {
		return false, errors.New("invalid hash params")
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(wantHash)))
	return subtle.ConstantTimeCompare(got, wantHash) == 1, nil
}
