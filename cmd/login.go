// ABOUTME: Login command for the krishi CLI
// ABOUTME: Performs a password sign-in and persists the resulting session

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/auth"
	"github.com/krishisahai/krishi-cli/internal/i18n"
)

var (
	loginEmail    string
	loginPhone    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the farming assistant",
	Long: `Sign in with email (or phone) and password. The session is stored in your
user config directory and reused by later commands until it expires.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runLogin(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPhone, "phone", "", "Account phone number")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (or set KRISHI_PASSWORD)")
	rootCmd.AddCommand(loginCmd)
}

// runLogin executes the sign-in and returns an exit code.
func runLogin(ctx context.Context, a *app, w io.Writer) int {
	password := loginPassword
	if password == "" {
		password = os.Getenv("KRISHI_PASSWORD")
	}

	creds := auth.Credentials{Email: loginEmail, Phone: loginPhone, Password: password}
	if err := a.mgr.SignIn(ctx, creds); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, a.T(i18n.KeyLoginSuccess))

	sess := a.mgr.Session()
	if sess != nil {
		minutes := int(sess.TimeUntilExpiry(nowFunc()).Minutes())
		fmt.Fprintf(w, a.T(i18n.KeySessionExpiresIn)+"\n", minutes)
	}
	return 0
}
