// ABOUTME: Profile commands for the krishi CLI
// ABOUTME: Shows the farmer profile and applies partial updates

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/i18n"
	"github.com/krishisahai/krishi-cli/internal/models"
)

var (
	profileFullName   string
	profileUsername   string
	profileLocation   string
	profileFarmSize   float64
	profileDistrictID int
	profileSoilTypeID int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the farmer profile",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runProfileShow(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update profile fields",
	Long: `Update one or more profile fields. Only the flags you pass are changed;
everything else is left as it was.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runProfileSet(ctx, a, cmd, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileFullName, "name", "", "Full name")
	profileSetCmd.Flags().StringVar(&profileUsername, "username", "", "Username")
	profileSetCmd.Flags().StringVar(&profileLocation, "location", "", "Location within Kerala")
	profileSetCmd.Flags().Float64Var(&profileFarmSize, "farm-size", 0, "Total farm size in acres")
	profileSetCmd.Flags().IntVar(&profileDistrictID, "district", 0, "District ID (see 'krishi farms districts')")
	profileSetCmd.Flags().IntVar(&profileSoilTypeID, "soil-type", 0, "Soil type ID (see 'krishi farms soil-types')")
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

// runProfileShow prints the current profile and returns an exit code.
func runProfileShow(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	profile := a.mgr.EnsureProfile()
	if profile == nil {
		fmt.Fprintln(w, a.T(i18n.KeyProfileMissing))
		return 0
	}

	if IsJSONOutput() {
		out, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		fmt.Fprintln(w, string(out))
		return 0
	}

	fmt.Fprintf(w, "Name:      %s\n", strOrDash(profile.FullName))
	fmt.Fprintf(w, "Username:  %s\n", strOrDash(profile.Username))
	fmt.Fprintf(w, "Location:  %s\n", strOrDash(profile.Location))
	if profile.FarmSize != nil {
		fmt.Fprintf(w, "Farm size: %.2f acres\n", *profile.FarmSize)
	} else {
		fmt.Fprintln(w, "Farm size: -")
	}
	fmt.Fprintf(w, "District:  %s\n", intOrDash(profile.DistrictID))
	fmt.Fprintf(w, "Soil type: %s\n", intOrDash(profile.SoilTypeID))
	return 0
}

// runProfileSet builds a partial update from the changed flags only, so an
// explicit --farm-size 0 is distinguishable from an omitted flag.
func runProfileSet(ctx context.Context, a *app, cmd *cobra.Command, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	var update models.ProfileUpdate
	if cmd.Flags().Changed("name") {
		update.FullName = &profileFullName
	}
	if cmd.Flags().Changed("username") {
		update.Username = &profileUsername
	}
	if cmd.Flags().Changed("location") {
		update.Location = &profileLocation
	}
	if cmd.Flags().Changed("farm-size") {
		update.FarmSize = &profileFarmSize
	}
	if cmd.Flags().Changed("district") {
		update.DistrictID = &profileDistrictID
	}
	if cmd.Flags().Changed("soil-type") {
		update.SoilTypeID = &profileSoilTypeID
	}

	if update.Empty() {
		fmt.Fprintln(w, "Nothing to update; pass at least one flag.")
		return 2
	}

	if _, err := a.api.UpdateProfile(ctx, update); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, a.T(i18n.KeyProfileUpdated))
	return 0
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func intOrDash(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}
