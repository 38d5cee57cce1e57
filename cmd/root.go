// ABOUTME: Root command for the krishi CLI
// ABOUTME: Handles global flags and wires config, auth manager, and API client together

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/api"
	"github.com/krishisahai/krishi-cli/internal/auth"
	"github.com/krishisahai/krishi-cli/internal/config"
	"github.com/krishisahai/krishi-cli/internal/i18n"
	"github.com/krishisahai/krishi-cli/internal/logger"
	"github.com/krishisahai/krishi-cli/internal/weather"
)

var (
	apiURL     string
	jsonOutput bool
	langFlag   string
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "krishi",
	Short: "Terminal client for the Kerala Krishi Sahai farming assistant",
	Long: `krishi is a command-line client for the Kerala Krishi Sahai farming assistant.

It manages your sign-in session, farm records, scheduled activities, weather
alerts, and the AI chat assistant, in English or Malayalam.

Environment Variables:
  KRISHI_API_URL        Backend API URL (default: http://localhost:8081)
  KRISHI_AUTH_URL       Auth provider project URL (required)
  KRISHI_AUTH_ANON_KEY  Auth provider anon key (required)
  KRISHI_LANG           Display language: en or ml (default: en)
  OPENWEATHER_API_KEY   Enables the direct weather fallback`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides KRISHI_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "Display language: en or ml (overrides KRISHI_LANG)")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// nowFunc allows tests to control time
var nowFunc = time.Now

// app bundles everything a command needs.
type app struct {
	cfg     *config.Config
	mgr     *auth.Manager
	api     *api.Client
	weather *weather.Service
	lang    i18n.Lang
}

// newApp loads configuration, restores the persisted session, and builds the
// clients. Every command goes through here so wiring stays in one place.
func newApp(ctx context.Context) (*app, error) {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIBaseURL = apiURL
	}
	if langFlag != "" {
		if langFlag != "en" && langFlag != "ml" {
			return nil, fmt.Errorf("--lang must be en or ml, got %q", langFlag)
		}
		cfg.Language = langFlag
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	store := auth.NewGoTrueStore(cfg.AuthURL, cfg.AuthAnonKey, httpClient)
	storage := auth.NewFileStorage(cfg.SessionFile)
	mgr := auth.NewManager(store, storage, nil, auth.ManagerConfig{
		ProfileTimeout: cfg.ProfileTimeout,
		DebounceWindow: cfg.DebounceWindow,
		Monitor: auth.MonitorConfig{
			Interval:         cfg.MonitorInterval,
			WarnThreshold:    cfg.WarnThreshold,
			RefreshThreshold: cfg.RefreshThreshold,
		},
	})

	apiClient := api.New(cfg.APIBaseURL, mgr.AccessToken, api.Options{
		HTTPClient: httpClient,
		OnUnauthorized: func() {
			mgr.ForceSignOut("backend rejected access token")
		},
		ChatPerMinute: cfg.ChatPerMinute,
		MasterDataTTL: cfg.MasterDataCacheTTL,
	})
	mgr.SetProfileFetcher(apiClient)

	if err := mgr.Initialize(ctx); err != nil {
		apiClient.Close()
		mgr.Close()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		mgr:     mgr,
		api:     apiClient,
		weather: weather.New(cfg.OpenWeatherAPIKey, httpClient, cfg.WeatherCacheTTL),
		lang:    i18n.ParseLang(cfg.Language),
	}, nil
}

// Close releases background goroutines.
func (a *app) Close() {
	a.mgr.Close()
	a.api.Close()
	a.weather.Close()
}

// T translates a message key into the configured language.
func (a *app) T(key string) string {
	return i18n.T(a.lang, key)
}

// signedIn reports whether a usable session exists.
func (a *app) signedIn() bool {
	return a.mgr.State().SignedIn()
}
