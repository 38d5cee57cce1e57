// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Verifies defaults, required variables, validation, and helper parsing

package config

import (
	"strings"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("KRISHI_AUTH_URL", "https://project.supabase.co")
	t.Setenv("KRISHI_AUTH_ANON_KEY", "anon-key")

	// Clear anything the surrounding environment might set; empty values
	// fall through to the defaults.
	for _, key := range []string{
		"KRISHI_API_URL", "KRISHI_PROFILE_TIMEOUT", "KRISHI_DEBOUNCE_WINDOW",
		"KRISHI_MONITOR_INTERVAL", "KRISHI_LANG", "KRISHI_CHAT_PER_MINUTE",
		"KRISHI_SESSION_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.APIBaseURL != DefaultAPIURL {
		t.Errorf("expected default API URL, got %q", cfg.APIBaseURL)
	}
	if cfg.ProfileTimeout != DefaultProfileTimeout {
		t.Errorf("expected default profile timeout, got %v", cfg.ProfileTimeout)
	}
	if cfg.DebounceWindow != DefaultDebounceWindow {
		t.Errorf("expected default debounce window, got %v", cfg.DebounceWindow)
	}
	if cfg.MonitorInterval != DefaultMonitorInterval {
		t.Errorf("expected default monitor interval, got %v", cfg.MonitorInterval)
	}
	if cfg.Language != "en" {
		t.Errorf("expected default language en, got %q", cfg.Language)
	}
	if cfg.ChatPerMinute != DefaultChatPerMinute {
		t.Errorf("expected default chat rate, got %d", cfg.ChatPerMinute)
	}
	if !strings.HasSuffix(cfg.SessionFile, "session.json") {
		t.Errorf("expected default session file path, got %q", cfg.SessionFile)
	}
}

func TestLoad_MissingAuthURL(t *testing.T) {
	t.Setenv("KRISHI_AUTH_URL", "")
	t.Setenv("KRISHI_AUTH_ANON_KEY", "anon-key")

	if _, err := Load(); err == nil {
		t.Error("expected error without KRISHI_AUTH_URL")
	}
}

func TestLoad_MissingAnonKey(t *testing.T) {
	t.Setenv("KRISHI_AUTH_URL", "https://project.supabase.co")
	t.Setenv("KRISHI_AUTH_ANON_KEY", "")

	if _, err := Load(); err == nil {
		t.Error("expected error without KRISHI_AUTH_ANON_KEY")
	}
}

func TestLoad_InvalidLanguage(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KRISHI_LANG", "fr")

	if _, err := Load(); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestLoad_MalayalamLanguage(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KRISHI_LANG", "ml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Language != "ml" {
		t.Errorf("expected ml, got %q", cfg.Language)
	}
}

func TestLoad_ChatRateOutOfRange(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KRISHI_CHAT_PER_MINUTE", "0")

	if _, err := Load(); err == nil {
		t.Error("expected error for chat rate of 0")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("KRISHI_API_URL", "api.example.com")
	t.Setenv("KRISHI_PROFILE_TIMEOUT", "3s")
	t.Setenv("KRISHI_SESSION_FILE", "/tmp/krishi-test-session.json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("expected scheme to be added, got %q", cfg.APIBaseURL)
	}
	if cfg.ProfileTimeout != 3*time.Second {
		t.Errorf("expected 3s profile timeout, got %v", cfg.ProfileTimeout)
	}
	if cfg.SessionFile != "/tmp/krishi-test-session.json" {
		t.Errorf("expected explicit session file, got %q", cfg.SessionFile)
	}
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
	}
	for _, tt := range tests {
		if got := ensureScheme(tt.in); got != tt.want {
			t.Errorf("ensureScheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetEnvDuration_InvalidValueFallsBack(t *testing.T) {
	t.Setenv("KRISHI_TEST_DURATION", "not-a-duration")
	if got := getEnvDuration("KRISHI_TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("expected fallback to default, got %v", got)
	}
}

func TestGetEnvInt_InvalidValueFallsBack(t *testing.T) {
	t.Setenv("KRISHI_TEST_INT", "abc")
	if got := getEnvInt("KRISHI_TEST_INT", 7); got != 7 {
		t.Errorf("expected fallback to default, got %d", got)
	}
}
