// ABOUTME: Dashboard command for the krishi CLI
// ABOUTME: One-screen summary of farms, plantings, pending work, and weather

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/i18n"
	"github.com/krishisahai/krishi-cli/internal/weather"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the farm dashboard summary",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runDashboard(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// runDashboard prints aggregate stats plus a weather line. Stats come from
// the backend; weather degrades to the direct provider so a backend outage
// still produces a useful screen.
func runDashboard(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	stats, err := a.api.DashboardStats(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	data, err := a.api.Weather(ctx, weather.DefaultLat, weather.DefaultLon, string(a.lang))
	if err != nil {
		slog.Warn("backend weather unavailable, using direct provider", "error", err)
		data = a.weather.Current(ctx, weather.DefaultLat, weather.DefaultLon, a.lang)
	}

	if IsJSONOutput() {
		return printJSON(w, map[string]any{
			"stats":   stats,
			"weather": data,
		})
	}

	fmt.Fprintf(w, "Farms:              %d\n", stats.TotalFarms)
	fmt.Fprintf(w, "Plots:              %d\n", stats.TotalPlots)
	fmt.Fprintf(w, "Active plantings:   %d\n", stats.ActivePlantings)
	fmt.Fprintf(w, "Pending activities: %d\n", stats.PendingActivities)
	fmt.Fprintf(w, "Upcoming harvests:  %d\n", stats.UpcomingHarvests)
	fmt.Fprintf(w, "\nWeather: %s, %d°C, %s\n", data.Location, data.Temperature, data.Condition)
	for _, alert := range data.Alerts {
		fmt.Fprintf(w, "  - %s\n", alert)
	}
	return 0
}
