// ABOUTME: Chat command for the krishi CLI
// ABOUTME: Sends a question to the AI assistant or replays the conversation history

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/i18n"
)

var chatHistory bool

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the AI farming assistant",
	Long: `Send a question to the AI farming assistant. Questions can be asked in
English or Malayalam; the assistant answers in the language you used.

Use --history to replay the stored conversation instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := runChat(ctx, a, strings.Join(args, " "), os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	chatCmd.Flags().BoolVar(&chatHistory, "history", false, "Show the stored conversation instead of sending a message")
	rootCmd.AddCommand(chatCmd)
}

// runChat sends a message or prints history and returns an exit code.
func runChat(ctx context.Context, a *app, message string, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	if chatHistory {
		history, err := a.api.ChatHistory(ctx)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
		if IsJSONOutput() {
			return printJSON(w, history)
		}
		for _, msg := range history {
			fmt.Fprintf(w, "[%s] %s: %s\n",
				msg.CreatedAt.Format("2006-01-02 15:04"), msg.Sender, msg.Content)
		}
		return 0
	}

	if strings.TrimSpace(message) == "" {
		fmt.Fprintln(w, "Error: provide a message, or pass --history")
		return 2
	}

	reply, err := a.api.SendMessage(ctx, message)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		return printJSON(w, reply)
	}
	fmt.Fprintln(w, reply.Reply)
	return 0
}
