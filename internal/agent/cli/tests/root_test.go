package tests

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ekorolkova/famhealth/internal/agent/cli"
)

// root без аргументов показывает help со списком команд
func TestRootCmd_ShowsHelp(t *testing.T) {
	cmd := cli.NewRootCmd("dev", "unknown")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	got := out.String()
	for _, sub := range []string{"register", "login", "member", "check", "note", "version"} {
		if !strings.Contains(got, sub) {
			t.Fatalf("expected help to mention %q, got: %q", sub, got)
		}
	}
}
