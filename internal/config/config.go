package config

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/moorebrett0/termpet/internal/species"
)

type Config struct {
	Pet     PetConfig     `yaml:"pet"`
	Log     LogConfig     `yaml:"log"`
	Locale  string        `yaml:"locale" env:"TERMPET_LOCALE"`
	AI      AIConfig      `yaml:"ai"`
	Claude  ClaudeConfig  `yaml:"claude"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Discord DiscordConfig `yaml:"discord"`
}

type PetConfig struct {
	Name    string `yaml:"name" env:"TERMPET_NAME"`
	Species string `yaml:"species" env:"TERMPET_SPECIES"` // empty: ask when the egg hatches
}

type LogConfig struct {
	Path  string `yaml:"path" env:"TERMPET_LOG_PATH"`
	Level string `yaml:"level" env:"TERMPET_LOG_LEVEL"` // debug, info, warn, error
}

type AIConfig struct {
	Provider string `yaml:"provider" env:"AI_PROVIDER"` // "claude", "gemini", or "" (auto-detect)
}

type ClaudeConfig struct {
	APIKey    string `yaml:"api_key" env:"ANTHROPIC_API_KEY"`
	Model     string `yaml:"model"`
	MaxTokens int64  `yaml:"max_tokens"`
	// Sliding window rate limiter
	RateLimit  int           `yaml:"rate_limit"`
	RateWindow time.Duration `yaml:"rate_window"`
	Timeout    time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key" env:"GOOGLE_API_KEY"`
	Model  string `yaml:"model"`
}

type DiscordConfig struct {
	Enabled   bool   `yaml:"enabled" env:"TERMPET_DISCORD"`
	BotToken  string `yaml:"bot_token" env:"DISCORD_BOT_TOKEN"`
	ChannelID string `yaml:"channel_id" env:"DISCORD_CHANNEL_ID"`
	QueueSize int    `yaml:"queue_size"`
}

// Load builds the configuration from defaults, the YAML file at path
// (optional), a .env file in the working directory and the process
// environment, in that order of increasing precedence.
func Load(path string) (*Config, error) {
	return load(path, ".env")
}

func load(path, dotEnv string) (*Config, error) {
	cfg := defaults()

	loadDotEnv(dotEnv)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// File doesn't exist, use defaults + env vars
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Env vars override config file (secrets live in .env or environment)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv reads a .env file and sets env vars that aren't already set.
func loadDotEnv(path string) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return // no .env, that's fine
	}
	for key, val := range vars {
		if os.Getenv(key) == "" && val != "" {
			os.Setenv(key, val)
		}
	}
}

func defaults() *Config {
	return &Config{
		Pet: PetConfig{
			Name: "Tama",
		},
		Log: LogConfig{
			Path:  "termpet.log",
			Level: "info",
		},
		Locale: "en-US",
		Claude: ClaudeConfig{
			Model:      "claude-sonnet-4-5-20250929",
			MaxTokens:  256,
			RateLimit:  10,
			RateWindow: time.Minute,
			Timeout:    10 * time.Second,
		},
		Gemini: GeminiConfig{
			Model: "gemini-2.5-flash",
		},
		Discord: DiscordConfig{
			QueueSize: 32,
		},
	}
}

// SlogLevel returns the configured log level.
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func validate(cfg *Config) error {
	cfg.Pet.Name = strings.TrimSpace(cfg.Pet.Name)
	if cfg.Pet.Name == "" {
		return fmt.Errorf("pet.name must not be empty")
	}
	if _, ok := species.Registry[cfg.Pet.Species]; cfg.Pet.Species != "" && !ok {
		ids := append([]string(nil), species.OrderedIDs...)
		sort.Strings(ids)
		return fmt.Errorf("unknown species %q (choose one of %s)", cfg.Pet.Species, strings.Join(ids, ", "))
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch cfg.AI.Provider {
	case "", "claude", "gemini":
	default:
		return fmt.Errorf("ai.provider must be claude or gemini, got %q", cfg.AI.Provider)
	}
	if cfg.Discord.Enabled {
		if cfg.Discord.BotToken == "" {
			return fmt.Errorf("discord is enabled but DISCORD_BOT_TOKEN is missing")
		}
		if cfg.Discord.ChannelID == "" {
			return fmt.Errorf("discord is enabled but DISCORD_CHANNEL_ID is missing")
		}
	}
	if cfg.Discord.QueueSize <= 0 {
		cfg.Discord.QueueSize = 32
	}
	return nil
}
