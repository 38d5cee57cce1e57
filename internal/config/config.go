// ABOUTME: Configuration loader for the krishi CLI
// ABOUTME: Loads settings from environment variables and an optional .env file

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for every tunable. Each is a single named constant so behavior
// differences never hide in scattered literals.
const (
	DefaultAPIURL         = "http://localhost:8081"
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultProfileTimeout = 10 * time.Second
	DefaultDebounceWindow = 300 * time.Millisecond

	// Session monitor: check every 5 minutes, warn when under 10 minutes
	// to expiry, proactively refresh when under 5 minutes.
	DefaultMonitorInterval  = 5 * time.Minute
	DefaultWarnThreshold    = 10 * time.Minute
	DefaultRefreshThreshold = 5 * time.Minute

	DefaultWeatherCacheTTL    = 10 * time.Minute
	DefaultMasterDataCacheTTL = 24 * time.Hour
	DefaultChatPerMinute      = 10
)

type Config struct {
	// Backend
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Auth provider (GoTrue-compatible)
	AuthURL     string
	AuthAnonKey string

	// Session lifecycle
	SessionFile      string
	ProfileTimeout   time.Duration
	DebounceWindow   time.Duration
	MonitorInterval  time.Duration
	WarnThreshold    time.Duration
	RefreshThreshold time.Duration

	// Weather fallback (direct OpenWeather call when the backend is down)
	OpenWeatherAPIKey string
	WeatherCacheTTL   time.Duration

	MasterDataCacheTTL time.Duration

	// Client-side ceiling on chat sends, requests per minute
	ChatPerMinute int

	// Display language: "en" or "ml"
	Language string
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first if present; real environment variables win.
func Load() (*Config, error) {
	// godotenv.Load does not override variables already set, which is the
	// precedence we want. A missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  ensureScheme(getEnv("KRISHI_API_URL", DefaultAPIURL)),
		HTTPTimeout: getEnvDuration("KRISHI_HTTP_TIMEOUT", DefaultHTTPTimeout),

		AuthURL:     ensureScheme(os.Getenv("KRISHI_AUTH_URL")),
		AuthAnonKey: os.Getenv("KRISHI_AUTH_ANON_KEY"),

		SessionFile:      os.Getenv("KRISHI_SESSION_FILE"),
		ProfileTimeout:   getEnvDuration("KRISHI_PROFILE_TIMEOUT", DefaultProfileTimeout),
		DebounceWindow:   getEnvDuration("KRISHI_DEBOUNCE_WINDOW", DefaultDebounceWindow),
		MonitorInterval:  getEnvDuration("KRISHI_MONITOR_INTERVAL", DefaultMonitorInterval),
		WarnThreshold:    getEnvDuration("KRISHI_WARN_THRESHOLD", DefaultWarnThreshold),
		RefreshThreshold: getEnvDuration("KRISHI_REFRESH_THRESHOLD", DefaultRefreshThreshold),

		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		WeatherCacheTTL:   getEnvDuration("KRISHI_WEATHER_CACHE_TTL", DefaultWeatherCacheTTL),

		MasterDataCacheTTL: getEnvDuration("KRISHI_MASTER_DATA_CACHE_TTL", DefaultMasterDataCacheTTL),

		ChatPerMinute: getEnvInt("KRISHI_CHAT_PER_MINUTE", DefaultChatPerMinute),

		Language: getEnv("KRISHI_LANG", "en"),
	}

	if cfg.AuthURL == "" {
		return nil, fmt.Errorf("KRISHI_AUTH_URL is required")
	}
	if cfg.AuthAnonKey == "" {
		return nil, fmt.Errorf("KRISHI_AUTH_ANON_KEY is required")
	}
	if cfg.Language != "en" && cfg.Language != "ml" {
		return nil, fmt.Errorf("KRISHI_LANG must be en or ml, got %q", cfg.Language)
	}
	if cfg.ChatPerMinute < 1 || cfg.ChatPerMinute > 600 {
		return nil, fmt.Errorf("KRISHI_CHAT_PER_MINUTE must be between 1 and 600, got %d", cfg.ChatPerMinute)
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine config directory: %w", err)
		}
		cfg.SessionFile = filepath.Join(dir, "krishi", "session.json")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// ensureScheme adds https:// prefix if the URL has no scheme
func ensureScheme(url string) string {
	if url == "" {
		return url
	}
	if !strings.Contains(url, "://") {
		return "https://" + url
	}
	return url
}
