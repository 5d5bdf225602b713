package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv_LoadsValuesAndIgnoresNoise(t *testing.T) {
	t.Setenv("A", "")
	t.Setenv("B", "")
	t.Setenv("C", "")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := []byte(`
# comment

A=one
export B=two
C="three"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("A"); got != "one" {
		t.Fatalf("A=%q, want %q", got, "one")
	}
	if got := os.Getenv("B"); got != "two" {
		t.Fatalf("B=%q, want %q", got, "two")
	}
	if got := os.Getenv("C"); got != "three" {
		t.Fatalf("C=%q, want %q", got, "three")
	}
}

func TestLoadDotEnv_DoesNotOverrideExistingEnv(t *testing.T) {
	t.Setenv("KEPT", "original")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("KEPT=overwritten\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}

	if got := os.Getenv("KEPT"); got != "original" {
		t.Fatalf("KEPT=%q, want %q", got, "original")
	}
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("loadDotEnv on missing file: %v", err)
	}
}

func TestParseDotEnvLine_StripsQuotesAndExport(t *testing.T) {
	cases := []struct {
		line      string
		key, val  string
		wantMatch bool
	}{
		{"FOO=bar", "FOO", "bar", true},
		{"export FOO=bar", "FOO", "bar", true},
		{`FOO='bar baz'`, "FOO", "bar baz", true},
		{"# FOO=bar", "", "", false},
		{"no-equals-sign", "", "", false},
		{"=value", "", "", false},
	}

	for _, tc := range cases {
		key, val, ok := parseDotEnvLine(tc.line)
		if ok != tc.wantMatch {
			t.Fatalf("parseDotEnvLine(%q) ok=%v, want %v", tc.line, ok, tc.wantMatch)
		}
		if ok && (key != tc.key || val != tc.val) {
			t.Fatalf("parseDotEnvLine(%q) = %q,%q want %q,%q", tc.line, key, val, tc.key, tc.val)
		}
	}
}
