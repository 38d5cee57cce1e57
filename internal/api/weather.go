// ABOUTME: Weather, crop-calendar, and dashboard endpoints of the backend API
// ABOUTME: Weather from the backend is preferred; the direct fallback lives in internal/weather

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/krishisahai/krishi-cli/internal/models"
)

// Weather fetches current weather with farming alerts from the backend.
// Zero lat/lon lets the backend default to Kochi.
func (c *Client) Weather(ctx context.Context, lat, lon float64, language string) (*models.WeatherData, error) {
	path := "/weather?language=" + language
	if lat != 0 || lon != 0 {
		path = fmt.Sprintf("/weather?lat=%g&lon=%g&language=%s", lat, lon, language)
	}
	var data models.WeatherData
	if err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// CropCalendar returns calendar guidance for a month (1-12).
func (c *Client) CropCalendar(ctx context.Context, month int) ([]models.CalendarEntry, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be 1-12, got %d", month)
	}
	var entries []models.CalendarEntry
	path := fmt.Sprintf("/crop-calendar?month=%d", month)
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DashboardStats returns the aggregate farm snapshot.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard-stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
