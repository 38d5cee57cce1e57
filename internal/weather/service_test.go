// ABOUTME: Tests for the direct OpenWeather client and alert derivation
// ABOUTME: Verifies condition mapping, threshold alerts, fallback data, and caching

package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/krishisahai/krishi-cli/internal/i18n"
	"github.com/krishisahai/krishi-cli/internal/models"
)

func TestMapCondition(t *testing.T) {
	tests := []struct {
		main string
		want string
	}{
		{"Rain", models.ConditionRainy},
		{"Drizzle", models.ConditionRainy},
		{"Thunderstorm", models.ConditionRainy},
		{"Clear", models.ConditionSunny},
		{"Clouds", models.ConditionCloudy},
		{"Mist", models.ConditionCloudy},
		{"Haze", models.ConditionCloudy},
	}
	for _, tt := range tests {
		if got := MapCondition(tt.main); got != tt.want {
			t.Errorf("MapCondition(%q) = %q, want %q", tt.main, got, tt.want)
		}
	}
}

func TestDeriveAlerts_Thresholds(t *testing.T) {
	march := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	// Calm conditions produce no alerts.
	if alerts := DeriveAlerts(30, 70, "Clear", i18n.English, march); len(alerts) != 0 {
		t.Errorf("expected no alerts for calm conditions, got %v", alerts)
	}

	// 36°C crosses the heat threshold; 35 does not.
	if alerts := DeriveAlerts(36, 70, "Clear", i18n.English, march); len(alerts) != 1 {
		t.Errorf("expected exactly the heat alert at 36°C, got %v", alerts)
	}
	if alerts := DeriveAlerts(35, 70, "Clear", i18n.English, march); len(alerts) != 0 {
		t.Errorf("expected no alert at exactly 35°C, got %v", alerts)
	}

	// 81% humidity crosses the pest threshold.
	if alerts := DeriveAlerts(30, 81, "Clear", i18n.English, march); len(alerts) != 1 {
		t.Errorf("expected exactly the humidity alert at 81%%, got %v", alerts)
	}

	// Rain adds the harvest warning.
	if alerts := DeriveAlerts(30, 70, "Rain", i18n.English, march); len(alerts) != 1 {
		t.Errorf("expected exactly the rain alert, got %v", alerts)
	}
}

func TestDeriveAlerts_RabiSeason(t *testing.T) {
	september := time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)
	alerts := DeriveAlerts(30, 70, "Clear", i18n.English, september)
	if len(alerts) != 1 {
		t.Fatalf("expected the Rabi season alert in September, got %v", alerts)
	}
	if alerts[0] != i18n.T(i18n.English, i18n.KeyAlertRabiSeason) {
		t.Errorf("unexpected alert %q", alerts[0])
	}
}

func TestDeriveAlerts_Malayalam(t *testing.T) {
	march := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	alerts := DeriveAlerts(40, 70, "Clear", i18n.Malayalam, march)
	if len(alerts) != 1 {
		t.Fatalf("expected one alert, got %v", alerts)
	}
	if alerts[0] != i18n.T(i18n.Malayalam, i18n.KeyAlertHighTemp) {
		t.Errorf("expected Malayalam alert text, got %q", alerts[0])
	}
}

func TestFallback(t *testing.T) {
	data := Fallback(i18n.English)
	if data.Temperature != 28 || data.Humidity != 75 {
		t.Errorf("unexpected fallback reading: %+v", data)
	}
	if data.Condition != models.ConditionCloudy {
		t.Errorf("expected cloudy fallback, got %q", data.Condition)
	}
	if data.Location != "Kochi, IN" {
		t.Errorf("unexpected fallback location %q", data.Location)
	}
	if len(data.Alerts) != 2 {
		t.Errorf("expected the unavailable + continue alerts, got %v", data.Alerts)
	}
}

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s := New("test-key", server.Client(), time.Hour)
	s.baseURL = server.URL
	t.Cleanup(s.Close)
	return s
}

const kochiPayload = `{
	"main": {"temp": 31.4, "humidity": 84},
	"weather": [{"main": "Rain", "description": "moderate rain"}],
	"wind": {"speed": 4.2},
	"name": "Kochi",
	"sys": {"country": "IN"}
}`

func TestService_CurrentMapsProviderData(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("expected metric units, got %q", got)
		}
		if got := r.URL.Query().Get("appid"); got != "test-key" {
			t.Errorf("expected api key in query, got %q", got)
		}
		fmt.Fprint(w, kochiPayload)
	})
	s.now = func() time.Time { return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC) }

	data := s.Current(context.Background(), 9.9312, 76.2673, i18n.English)

	if data.Temperature != 31 {
		t.Errorf("expected rounded 31°C, got %d", data.Temperature)
	}
	if data.Condition != models.ConditionRainy {
		t.Errorf("expected rainy condition, got %q", data.Condition)
	}
	if data.WindSpeedKPH != 15 { // 4.2 m/s ≈ 15.1 km/h
		t.Errorf("expected 15 km/h wind, got %d", data.WindSpeedKPH)
	}
	if data.Location != "Kochi, IN" {
		t.Errorf("unexpected location %q", data.Location)
	}
	// 84% humidity and rain both alert.
	if len(data.Alerts) != 2 {
		t.Errorf("expected humidity + rain alerts, got %v", data.Alerts)
	}
}

func TestService_CurrentUsesCache(t *testing.T) {
	var hits atomic.Int32
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, kochiPayload)
	})

	for i := 0; i < 3; i++ {
		s.Current(context.Background(), 9.9312, 76.2673, i18n.English)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("expected 1 provider hit for repeated coordinates, got %d", got)
	}
}

func TestService_CurrentFallsBackOnProviderError(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	data := s.Current(context.Background(), 9.9312, 76.2673, i18n.English)
	if data == nil {
		t.Fatal("Current must never return nil")
	}
	if data.Location != "Kochi, IN" || data.Temperature != 28 {
		t.Errorf("expected fallback data, got %+v", data)
	}
}

func TestService_CurrentWithoutAPIKeyFallsBack(t *testing.T) {
	s := New("", nil, time.Hour)
	t.Cleanup(s.Close)

	data := s.Current(context.Background(), 0, 0, i18n.Malayalam)
	if data == nil {
		t.Fatal("Current must never return nil")
	}
	if data.Alerts[0] != i18n.T(i18n.Malayalam, i18n.KeyWeatherUnavailable) {
		t.Errorf("expected Malayalam unavailable alert, got %q", data.Alerts[0])
	}
}

func TestService_ZeroCoordinatesDefaultToKochi(t *testing.T) {
	var gotLat, gotLon string
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotLat = r.URL.Query().Get("lat")
		gotLon = r.URL.Query().Get("lon")
		fmt.Fprint(w, kochiPayload)
	})

	s.Current(context.Background(), 0, 0, i18n.English)
	if gotLat != "9.9312" || gotLon != "76.2673" {
		t.Errorf("expected Kochi defaults, got lat=%s lon=%s", gotLat, gotLon)
	}
}
