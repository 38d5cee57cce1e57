// ABOUTME: Status command for the krishi CLI
// ABOUTME: Reports session validity, expiry, and profile completeness

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/i18n"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session and profile state",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runStatus(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// statusReport is the JSON shape for status output.
type statusReport struct {
	SignedIn        bool   `json:"signed_in"`
	Email           string `json:"email,omitempty"`
	UserID          string `json:"user_id,omitempty"`
	ExpiresAt       string `json:"expires_at,omitempty"`
	MinutesLeft     int    `json:"minutes_left,omitempty"`
	ProfileComplete bool   `json:"profile_complete"`
	Language        string `json:"language"`
}

// runStatus prints the session report and returns an exit code. A missing
// session is exit code 3 so scripts can distinguish it from errors.
func runStatus(ctx context.Context, a *app, w io.Writer) int {
	state := a.mgr.State()

	if !state.SignedIn() {
		if IsJSONOutput() {
			out, _ := json.MarshalIndent(statusReport{Language: string(a.lang)}, "", "  ")
			fmt.Fprintln(w, string(out))
		} else {
			fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		}
		return 3
	}

	// Profile load is best-effort; status still reports the session when the
	// backend is unreachable.
	profile := a.mgr.EnsureProfile()

	sess := state.Session
	minutes := int(sess.TimeUntilExpiry(nowFunc()).Minutes())
	report := statusReport{
		SignedIn:        true,
		Email:           sess.User.Email,
		UserID:          sess.User.ID,
		ExpiresAt:       sess.ExpiresAt.Format(time.RFC3339),
		MinutesLeft:     minutes,
		ProfileComplete: profile != nil && profile.Complete(),
		Language:        string(a.lang),
	}

	if IsJSONOutput() {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, string(out))
		return 0
	}

	fmt.Fprintf(w, "Signed in as: %s\n", report.Email)
	fmt.Fprintf(w, "User ID:      %s\n", report.UserID)
	fmt.Fprintf(w, "Expires:      %s (%d minutes)\n", report.ExpiresAt, report.MinutesLeft)
	if report.ProfileComplete {
		fmt.Fprintln(w, "Profile:      complete")
	} else {
		fmt.Fprintln(w, "Profile:      incomplete")
		fmt.Fprintln(w, a.T(i18n.KeyProfileMissing))
	}
	return 0
}
