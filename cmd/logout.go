// ABOUTME: Logout command for the krishi CLI
// ABOUTME: Revokes the session with the provider and removes the session file

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/i18n"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the farming assistant",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runLogout(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout signs out and returns an exit code. Signing out while already
// signed out is fine; the end state is the same.
func runLogout(ctx context.Context, a *app, w io.Writer) int {
	if err := a.mgr.SignOut(ctx); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, a.T(i18n.KeyLogoutSuccess))
	return 0
}
