package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"safik-ai/site/internal/api"
	"safik-ai/site/internal/assistant"
	"safik-ai/site/internal/config"
	"safik-ai/site/internal/interfaces"
	"safik-ai/site/internal/service"
)

const (
	shutdownTimeout = 10 * time.Second
	probeTimeout    = 2 * time.Second
)

// App holds the wired components of the site server.
type App struct {
	Config    *config.Config
	Assistant *assistant.Client
	Sessions  *service.SessionService
	Server    *http.Server
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}

	probeAssistant(ctx, app.Assistant)

	if err := app.Serve(ctx); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	slog.Info("Server stopped.")
	return 0
}

// NewApp wires the assistant client, session registry and HTTP router.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg.AssistantURL == "" {
		return nil, errors.New("assistant URL is required")
	}

	client := assistant.NewClient(cfg.AssistantURL, assistant.WithTimeout(cfg.AssistantTimeout))
	sessions := service.NewSessionService(client, service.SessionOptions{
		Greeting:    cfg.Greeting,
		Fallback:    cfg.FallbackMessage,
		Suggestions: cfg.Suggestions,
	})

	chatHandler := api.NewChatHandler(sessions)
	router := api.NewRouter(chatHandler, cfg.StaticDir)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	return &App{Config: cfg, Assistant: client, Sessions: sessions, Server: server}, nil
}

// Serve runs the HTTP server and the idle-session janitor until ctx is done,
// then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting server", "addr", a.Server.Addr, "assistant_url", a.Assistant.Endpoint())
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		slog.Info("Shutting down server...")
		return a.Server.Shutdown(shutdownCtx)
	})

	if ttl := a.Config.SessionIdleTTL; ttl > 0 {
		g.Go(func() error {
			runJanitor(gctx, a.Sessions, ttl)
			return nil
		})
	}

	return g.Wait()
}

// minJanitorInterval bounds how often the janitor wakes up for very short TTLs.
const minJanitorInterval = time.Millisecond

// runJanitor prunes idle sessions every half TTL until ctx is done.
func runJanitor(ctx context.Context, sessions interfaces.SessionPruner, ttl time.Duration) {
	interval := ttl / 2
	if interval < minJanitorInterval {
		interval = minJanitorInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions.Prune(ctx, ttl)
		}
	}
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// probeAssistant checks once whether the assistant backend answers. The site
// serves either way; questions asked while the backend is down get the
// fallback reply.
func probeAssistant(ctx context.Context, client *assistant.Client) bool {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	if err := client.Health(probeCtx); err != nil {
		slog.Warn("Assistant backend is not reachable yet", "url", client.Endpoint(), "error", err)
		return false
	}
	slog.Info("Assistant backend is ready.", "url", client.Endpoint())
	return true
}
