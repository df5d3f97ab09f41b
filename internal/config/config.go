package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"safik-ai/site/internal/chat"
)

type Config struct {
	AppPort          int           `mapstructure:"APP_PORT" validate:"min=1,max=65535"`
	AssistantURL     string        `mapstructure:"ASSISTANT_URL" validate:"required,url"`
	AssistantTimeout time.Duration `mapstructure:"ASSISTANT_TIMEOUT" validate:"gt=0"`
	StaticDir        string        `mapstructure:"STATIC_DIR"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	Greeting         string        `mapstructure:"CHAT_GREETING"`
	FallbackMessage  string        `mapstructure:"CHAT_FALLBACK_MESSAGE"`
	// Suggestions are read from a single pipe-separated CHAT_SUGGESTIONS value.
	Suggestions    []string      `mapstructure:"-"`
	// SessionIdleTTL of zero keeps sessions forever.
	SessionIdleTTL time.Duration `mapstructure:"SESSION_IDLE_TTL" validate:"omitempty,gte=1s"`
}

// DefaultSuggestions are the questions offered under an empty transcript.
var DefaultSuggestions = []string{
	"What AI services do you offer?",
	"Tell me about your pricing",
	"What industries do you work with?",
	"How long does implementation take?",
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 3000)
	viper.SetDefault("ASSISTANT_URL", "http://localhost:8000/api/chat")
	viper.SetDefault("ASSISTANT_TIMEOUT", "30s")
	viper.SetDefault("STATIC_DIR", "./frontend/out")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("CHAT_GREETING", chat.DefaultGreeting)
	viper.SetDefault("CHAT_FALLBACK_MESSAGE", chat.DefaultFallback)
	viper.SetDefault("CHAT_SUGGESTIONS", strings.Join(DefaultSuggestions, "|"))
	viper.SetDefault("SESSION_IDLE_TTL", "30m")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Suggestions = ParseSuggestions(viper.GetString("CHAT_SUGGESTIONS"))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// ParseSuggestions splits a pipe-separated list, dropping blank entries.
func ParseSuggestions(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, "|") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
