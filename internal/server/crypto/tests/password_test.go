package tests

import (
	"strings"
	"testing"

	crypt "github.com/ekorolkova/famhealth/internal/server/crypto"
)

func bcryptParams() crypt.Params {
	// минимальная стоимость, чтобы тесты не тормозили
	return crypt.Params{Hasher: "bcrypt", BcryptCost: 4}
}

func argon2Params() crypt.Params {
	return crypt.Params{
		Hasher: "argon2id",
		Argon2: crypt.Argon2Params{
			Time:      1,
			MemoryKiB: 32 * 1024,
			Threads:   1,
			KeyLen:    32,
			SaltLen:   16,
		},
	}
}

// Хэширование и успешная проверка (bcrypt)
func TestHashAndVerifyPassword_Bcrypt_OK(t *testing.T) {
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}

	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Хэширование и успешная проверка (argon2id)
func TestHashAndVerifyPassword_Argon2_OK(t *testing.T) {
	password := "super-secret-password"

	hash, err := crypt.HashPassword(password, argon2Params())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !strings.HasPrefix(hash, "argon2id$") {
		t.Fatalf("expected argon2id hash, got %q", hash)
	}

	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}

	if !ok {
		t.Fatal("expected password to be valid")
	}
}

// Неверный пароль
func TestVerifyPassword_InvalidPassword(t *testing.T) {
	hash, err := crypt.HashPassword("correct-password", bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	ok, err := crypt.VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}

	if ok {
		t.Fatal("expected password to be invalid")
	}
}

// Пустой пароль
func TestHashPassword_EmptyPassword(t *testing.T) {
	_, err := crypt.HashPassword("", bcryptParams())
	if err == nil {
		t.Fatal("expected error for empty password")
	}
}

// Неизвестный алгоритм
func TestHashPassword_UnknownHasher(t *testing.T) {
	_, err := crypt.HashPassword("password", crypt.Params{Hasher: "md5"})
	if err == nil {
		t.Fatal("expected error for unknown hasher")
	}
}

// Битый формат хэша
func TestVerifyPassword_InvalidFormat(t *testing.T) {
	_, err := crypt.VerifyPassword("password", "not-a-valid-hash")
	if err == nil {
		t.Fatal("expected error for invalid hash format")
	}
}

// Битый argon2id-хэш — (false, error), никогда не паника.
// Любой из таких хэшей может оказаться в базе после порчи записи,
// и падение процесса на логине недопустимо.
func TestVerifyPassword_CorruptedArgon2_NoPanic(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty salt and hash", "argon2id$v=19$m=1,t=1,p=1$$"},
		{"zero time", "argon2id$v=19$m=1024,t=0,p=1$c2FsdA$aGFzaA"},
		{"zero threads", "argon2id$v=19$m=1024,t=1,p=0$c2FsdA$aGFzaA"},
		{"empty hash", "argon2id$v=19$m=1024,t=1,p=1$c2FsdA$"},
		{"bad base64 salt", "argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA"},
		{"bad params", "argon2id$v=19$garbage$c2FsdA$aGFzaA"},
		{"missing segments", "argon2id$v=19$m=1024,t=1,p=1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := crypt.VerifyPassword("anything", tc.encoded)
			if err == nil {
				t.Fatalf("expected error for corrupted hash %q", tc.encoded)
			}
			if ok {
				t.Fatalf("expected corrupted hash %q to not verify", tc.encoded)
			}
		})
	}
}

// Проверка: соль разная (хэши разные)
func TestHashPassword_DifferentSalt(t *testing.T) {
	password := "same-password"

	h1, _ := crypt.HashPassword(password, argon2Params())
	h2, _ := crypt.HashPassword(password, argon2Params())

	if h1 == h2 {
		t.Fatal("expected different hashes for same password")
	}
}

// Смена алгоритма в конфиге не ломает старые хэши:
// алгоритм проверки определяется по формату хэша.
func TestVerifyPassword_CrossHasher(t *testing.T) {
	password := "legacy-password"

	hash, err := crypt.HashPassword(password, bcryptParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	// сервер уже переключён на argon2id, но хэш — bcrypt
	ok, err := crypt.VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword error: %v", err)
	}
	if !ok {
		t.Fatal("expected legacy bcrypt hash to still verify")
	}
}
