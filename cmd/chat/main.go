package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"safik-ai/site/internal/assistant"
	"safik-ai/site/internal/chat"
	"safik-ai/site/internal/config"
	"safik-ai/site/internal/tui"
)

var (
	// Global flags
	endpoint string
	timeout  time.Duration
	logFile  string

	cfg    *config.Config
	logger *slog.Logger
	closer io.Closer
)

// rootCmd runs the interactive chat widget.
var rootCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the Safik AI assistant from the terminal",
	Long: `chat is a terminal version of the assistant widget on the Safik AI site.

Run without arguments to start the interactive chat. On an empty input, press
a suggestion's number to send it. Ctrl+L clears the chat and Esc quits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cmd.Flags().Changed("endpoint") {
			cfg.AssistantURL = endpoint
		}
		if cmd.Flags().Changed("timeout") {
			cfg.AssistantTimeout = timeout
		}

		logger, closer, err = newLogger(logFile, cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closer != nil {
			_ = closer.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(cmd.Context(), newSession(), cfg.Suggestions)
	},
}

// askCmd sends one question and prints the reply.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and print the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ask(cmd.Context(), cmd.OutOrStdout(), newSession(), strings.Join(args, " "))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Assistant endpoint URL (or set ASSISTANT_URL env)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Assistant request timeout")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write JSON logs to this file")

	rootCmd.AddCommand(askCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newSession() *chat.Session {
	client := assistant.NewClient(cfg.AssistantURL, assistant.WithTimeout(cfg.AssistantTimeout))
	return chat.New(client,
		chat.WithGreeting(cfg.Greeting),
		chat.WithFallback(cfg.FallbackMessage),
		chat.WithLogger(logger),
	)
}

// ask submits question and writes the settled reply to w.
func ask(ctx context.Context, w io.Writer, session *chat.Session, question string) error {
	done, ok := session.Submit(ctx, question)
	if !ok {
		return fmt.Errorf("nothing to ask")
	}

	select {
	case reply := <-done:
		if _, err := fmt.Fprintln(w, reply.Text); err != nil {
			return err
		}
		if reply.HasSources() {
			_, err := fmt.Fprintf(w, "\nSources: %s\n", strings.Join(reply.Sources, ", "))
			return err
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newLogger keeps the terminal clean: logs go to path when set and are
// discarded otherwise.
func newLogger(path, level string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl})), f, nil
}
