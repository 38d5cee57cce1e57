// ABOUTME: Weather command for the krishi CLI
// ABOUTME: Prefers the backend's weather endpoint, falling back to the direct provider

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/models"
	"github.com/krishisahai/krishi-cli/internal/weather"
)

var (
	weatherLat float64
	weatherLon float64
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Show current weather and farming alerts",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runWeather(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	weatherCmd.Flags().Float64Var(&weatherLat, "lat", weather.DefaultLat, "Latitude")
	weatherCmd.Flags().Float64Var(&weatherLon, "lon", weather.DefaultLon, "Longitude")
	rootCmd.AddCommand(weatherCmd)
}

// runWeather asks the backend first so signed-in users get its enriched data,
// then falls back to the direct provider, which itself degrades to static
// fallback data. Weather always prints something.
func runWeather(ctx context.Context, a *app, w io.Writer) int {
	var data *models.WeatherData

	if a.signedIn() {
		backendData, err := a.api.Weather(ctx, weatherLat, weatherLon, string(a.lang))
		if err != nil {
			slog.Warn("backend weather unavailable, using direct provider", "error", err)
		} else {
			data = backendData
		}
	}
	if data == nil {
		data = a.weather.Current(ctx, weatherLat, weatherLon, a.lang)
	}

	if IsJSONOutput() {
		return printJSON(w, data)
	}

	fmt.Fprintf(w, "%s: %d°C, %s\n", data.Location, data.Temperature, data.Condition)
	fmt.Fprintf(w, "Humidity: %d%%  Wind: %d km/h\n", data.Humidity, data.WindSpeedKPH)
	if data.Description != "" {
		fmt.Fprintf(w, "%s\n", data.Description)
	}
	if len(data.Alerts) > 0 {
		fmt.Fprintln(w, "\nAlerts:")
		for _, alert := range data.Alerts {
			fmt.Fprintf(w, "  - %s\n", strings.TrimSpace(alert))
		}
	}
	return 0
}
