// ABOUTME: Activity commands for the krishi CLI
// ABOUTME: Lists, schedules, and completes farm activities

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/i18n"
	"github.com/krishisahai/krishi-cli/internal/models"
)

var (
	activityStatus    string
	activityPlanting  int64
	activityType      string
	activityNotes     string
	activityCost      float64
	activityScheduled string
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "List scheduled farm activities",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runActivitiesList(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var activitiesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a new activity for a planting",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runActivitiesAdd(ctx, a, cmd, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var activitiesDoneCmd = &cobra.Command{
	Use:   "done <activity-id>",
	Short: "Mark an activity as completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runActivitiesDone(ctx, a, args[0], os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	activitiesCmd.Flags().StringVar(&activityStatus, "status", "", "Filter by status: pending, scheduled, or done")

	activitiesAddCmd.Flags().Int64Var(&activityPlanting, "planting", 0, "Planting ID the activity belongs to")
	activitiesAddCmd.Flags().StringVar(&activityType, "type", "", "Activity type: planting, watering, fertilizing, or harvesting")
	activitiesAddCmd.Flags().StringVar(&activityNotes, "notes", "", "Free-form notes")
	activitiesAddCmd.Flags().Float64Var(&activityCost, "cost", 0, "Estimated cost")
	activitiesAddCmd.Flags().StringVar(&activityScheduled, "on", "", "Scheduled date (YYYY-MM-DD)")

	activitiesCmd.AddCommand(activitiesAddCmd)
	activitiesCmd.AddCommand(activitiesDoneCmd)
	rootCmd.AddCommand(activitiesCmd)
}

// runActivitiesList prints activities, optionally filtered by status.
func runActivitiesList(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	activities, err := a.api.ListActivities(ctx, activityStatus)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		out, err := json.MarshalIndent(activities, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, string(out))
		return 0
	}

	if len(activities) == 0 {
		fmt.Fprintln(w, a.T(i18n.KeyNoActivities))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tSTATUS\tSCHEDULED\tNOTES")
	for _, act := range activities {
		notes := ""
		if act.Notes != nil {
			notes = *act.Notes
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			act.ActivityID, act.ActivityType, act.Status,
			act.ScheduledFor.Format("2006-01-02"), notes)
	}
	tw.Flush()
	return 0
}

// runActivitiesAdd schedules a new activity.
func runActivitiesAdd(ctx context.Context, a *app, cmd *cobra.Command, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	scheduled, err := time.Parse("2006-01-02", activityScheduled)
	if err != nil {
		fmt.Fprintf(w, "Error: --on must be YYYY-MM-DD: %v\n", err)
		return 2
	}

	input := models.ActivityCreate{
		PlantingID:   activityPlanting,
		ActivityType: activityType,
		ScheduledFor: scheduled,
	}
	if cmd.Flags().Changed("notes") {
		input.Notes = &activityNotes
	}
	if cmd.Flags().Changed("cost") {
		input.Cost = &activityCost
	}

	created, err := a.api.CreateActivity(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, a.T(i18n.KeyActivityCreated))
	fmt.Fprintf(w, "Activity ID: %d\n", created.ActivityID)
	return 0
}

// runActivitiesDone marks an activity completed.
func runActivitiesDone(ctx context.Context, a *app, rawID string, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(w, "Error: activity ID must be a positive integer, got %q\n", rawID)
		return 2
	}

	if _, err := a.api.CompleteActivity(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, a.T(i18n.KeyActivityCompleted))
	return 0
}
