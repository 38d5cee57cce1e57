// ABOUTME: Crop calendar command for the krishi CLI
// ABOUTME: Shows per-month planting guidance for Kerala crops

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/i18n"
)

var calendarMonth int

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the crop calendar for a month",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runCalendar(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	calendarCmd.Flags().IntVar(&calendarMonth, "month", 0, "Month 1-12 (default: current month)")
	rootCmd.AddCommand(calendarCmd)
}

// runCalendar prints crop guidance for the requested month.
func runCalendar(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	month := calendarMonth
	if month == 0 {
		month = int(nowFunc().Month())
	}

	entries, err := a.api.CropCalendar(ctx, month)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		return printJSON(w, entries)
	}

	fmt.Fprintf(w, "Crop calendar for %s:\n", time.Month(month))
	if len(entries) == 0 {
		fmt.Fprintln(w, "No guidance for this month.")
		return 0
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CROP\tSEASON\tGUIDANCE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.CropName, e.Season, e.Guidance)
	}
	tw.Flush()
	return 0
}
