// ABOUTME: Direct OpenWeather client used when the backend weather endpoint is down
// ABOUTME: Maps provider conditions to three states and derives bilingual farming alerts

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/krishisahai/krishi-cli/internal/cache"
	"github.com/krishisahai/krishi-cli/internal/i18n"
	"github.com/krishisahai/krishi-cli/internal/models"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// Kochi, Kerala — the default location when the user gives no coordinates.
const (
	DefaultLat = 9.9312
	DefaultLon = 76.2673
)

// openWeatherResponse is the subset of the provider payload we read.
type openWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s
	} `json:"wind"`
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// Service fetches current weather directly from OpenWeather.
type Service struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache[*models.WeatherData]
	now        func() time.Time
}

// New creates a weather service. cacheTTL bounds how often the same
// coordinates hit the provider.
func New(apiKey string, httpClient *http.Client, cacheTTL time.Duration) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Service{
		apiKey:     apiKey,
		baseURL:    openWeatherBaseURL,
		httpClient: httpClient,
		cache:      cache.New[*models.WeatherData](cacheTTL),
		now:        time.Now,
	}
}

// Close stops cache maintenance.
func (s *Service) Close() {
	s.cache.Stop()
}

// Current returns weather for the coordinates, or the Kerala fallback data
// when the provider is unreachable. It never returns an error to the caller;
// weather is non-critical and silently degrades.
func (s *Service) Current(ctx context.Context, lat, lon float64, lang i18n.Lang) *models.WeatherData {
	if lat == 0 && lon == 0 {
		lat, lon = DefaultLat, DefaultLon
	}

	key := fmt.Sprintf("%.4f,%.4f,%s", lat, lon, lang)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}

	data, err := s.fetch(ctx, lat, lon, lang)
	if err != nil {
		slog.Warn("weather fetch failed, using fallback data", "error", err.Error())
		return Fallback(lang)
	}

	s.cache.Set(key, data)
	return data
}

func (s *Service) fetch(ctx context.Context, lat, lon float64, lang i18n.Lang) (*models.WeatherData, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("no OpenWeather API key configured")
	}

	url := fmt.Sprintf("%s/weather?lat=%g&lon=%g&appid=%s&units=metric", s.baseURL, lat, lon, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned status %d", resp.StatusCode)
	}

	var raw openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid response from weather provider: %w", err)
	}
	if len(raw.Weather) == 0 {
		return nil, fmt.Errorf("weather provider returned no conditions")
	}

	return &models.WeatherData{
		Temperature:  int(math.Round(raw.Main.Temp)),
		Humidity:     raw.Main.Humidity,
		Condition:    MapCondition(raw.Weather[0].Main),
		WindSpeedKPH: int(math.Round(raw.Wind.Speed * 3.6)),
		Location:     raw.Name + ", " + raw.Sys.Country,
		Description:  raw.Weather[0].Description,
		Alerts:       s.alerts(&raw, lang),
	}, nil
}

// MapCondition collapses the provider's condition to sunny/cloudy/rainy.
func MapCondition(main string) string {
	m := strings.ToLower(main)
	switch {
	case strings.Contains(m, "rain"), strings.Contains(m, "drizzle"), strings.Contains(m, "thunderstorm"):
		return models.ConditionRainy
	case strings.Contains(m, "clear"):
		return models.ConditionSunny
	default:
		return models.ConditionCloudy
	}
}

// alerts derives farming guidance from the raw reading.
func (s *Service) alerts(raw *openWeatherResponse, lang i18n.Lang) []string {
	return DeriveAlerts(int(math.Round(raw.Main.Temp)), raw.Main.Humidity, raw.Weather[0].Main, lang, s.now())
}

// DeriveAlerts builds the alert list from a reading. Thresholds follow the
// Kerala agriculture extension guidance the assistant ships with.
func DeriveAlerts(tempC, humidity int, condition string, lang i18n.Lang, now time.Time) []string {
	var alerts []string

	if tempC > 35 {
		alerts = append(alerts, i18n.T(lang, i18n.KeyAlertHighTemp))
	}
	if humidity > 80 {
		alerts = append(alerts, i18n.T(lang, i18n.KeyAlertHighHumidity))
	}
	if strings.Contains(strings.ToLower(condition), "rain") {
		alerts = append(alerts, i18n.T(lang, i18n.KeyAlertRain))
	}
	// September marks Rabi planning season in Kerala.
	if now.Month() == time.September {
		alerts = append(alerts, i18n.T(lang, i18n.KeyAlertRabiSeason))
	}

	return alerts
}

// Fallback returns canned Kochi weather so the assistant stays usable
// when every weather source is down.
func Fallback(lang i18n.Lang) *models.WeatherData {
	return &models.WeatherData{
		Temperature:  28,
		Humidity:     75,
		Condition:    models.ConditionCloudy,
		WindSpeedKPH: 12,
		Location:     "Kochi, IN",
		Description:  "Partly cloudy",
		Alerts: []string{
			i18n.T(lang, i18n.KeyWeatherUnavailable),
			i18n.T(lang, i18n.KeyContinueNormal),
		},
	}
}
