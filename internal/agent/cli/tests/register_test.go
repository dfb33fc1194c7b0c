package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ekorolkova/famhealth/internal/agent/cli"
	"github.com/ekorolkova/famhealth/internal/agent/config"
)

func TestNewRegisterCmd_Success_SavesToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
			Name     string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Email != "test@example.com" || req.Name != "Test User" {
			t.Fatalf("unexpected request: %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "access-reg",
			"token_type":   "bearer",
		})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()
	credsPath := filepath.Join(tmpDir, "creds.json")

	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: credsPath,
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{
		"--email", "test@example.com",
		"--password", "StrongPass123",
		"--name", "Test User",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if got := out.String(); !strings.Contains(got, "registration successful") {
		t.Fatalf("unexpected output: %q", got)
	}

	loaded, err := config.Load(credsPath)
	if err != nil {
		t.Fatalf("Load creds: %v", err)
	}
	if loaded.AccessToken != "access-reg" {
		t.Fatalf("expected saved token, got %+v", loaded)
	}
}

func TestNewRegisterCmd_EmailTaken_ReturnsDetail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "email already registered"})
	})

	srv := httptest.NewTLSServer(mux)
	defer srv.Close()

	tmpDir := t.TempDir()
	app := &cli.App{
		ServerURL: srv.URL,
		CredsPath: filepath.Join(tmpDir, "creds.json"),
		Creds:     &config.Credentials{},
	}

	cmd := cli.NewRegisterCmd(app)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--email", "taken@example.com", "--password", "pass", "--name", "User"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "email already registered") {
		t.Fatalf("expected detail in error, got %q", err.Error())
	}
}
