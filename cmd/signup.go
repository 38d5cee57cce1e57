// ABOUTME: Signup command for the krishi CLI
// ABOUTME: Registers a new account and signs in immediately

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
	signupEmail    string
	signupPhone    string
	signupPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a farming assistant account",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runSignup(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "Account email")
	signupCmd.Flags().StringVar(&signupPhone, "phone", "", "Account phone number")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password (or set KRISHI_PASSWORD)")
	rootCmd.AddCommand(signupCmd)
}

// runSignup executes the registration and returns an exit code.
func runSignup(ctx context.Context, a *app, w io.Writer) int {
	password := signupPassword
	if password == "" {
		password = os.Getenv("KRISHI_PASSWORD")
	}

	creds := auth.Credentials{Email: signupEmail, Phone: signupPhone, Password: password}
	if err := a.mgr.SignUp(ctx, creds); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, a.T(i18n.KeySignupSuccess))
	fmt.Fprintln(w, a.T(i18n.KeyProfileMissing))
	return 0
}
