// Package brain asks an AI model for a few words in the pet's voice.
package brain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/moorebrett0/termpet/internal/pet"
	"github.com/moorebrett0/termpet/internal/species"
)

// ErrRateLimited is returned when too many requests were made recently.
var ErrRateLimited = errors.New("brain: rate limited")

// Brain wraps an AI provider with prompt building, a timeout and a
// rate limiter.
type Brain struct {
	provider Provider
	timeout  time.Duration

	// Sliding-window rate limiter
	mu      sync.Mutex
	window  []time.Time
	rateMax int
	rateDur time.Duration
}

// Config for creating a Brain.
type Config struct {
	// Claude
	ClaudeAPIKey string
	ClaudeModel  string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// Which provider to force ("claude", "gemini", or "" for auto-detect)
	Provider string

	MaxTokens  int64
	RateLimit  int
	RateWindow time.Duration
	Timeout    time.Duration
}

// New creates a Brain. Returns nil if no API key is configured.
func New(ctx context.Context, cfg Config) *Brain {
	provider := newProvider(ctx, cfg)
	if provider == nil {
		slog.Info("brain: no API key configured, AI features disabled")
		return nil
	}
	return NewWithProvider(provider, cfg)
}

// NewWithProvider creates a Brain backed by p.
func NewWithProvider(p Provider, cfg Config) *Brain {
	return &Brain{
		provider: p,
		timeout:  cfg.Timeout,
		rateMax:  cfg.RateLimit,
		rateDur:  cfg.RateWindow,
	}
}

// newProvider auto-detects or forces the AI provider.
func newProvider(ctx context.Context, cfg Config) Provider {
	pick := cfg.Provider

	// Auto-detect if not forced
	if pick == "" {
		switch {
		case cfg.ClaudeAPIKey != "":
			pick = "claude"
		case cfg.GeminiAPIKey != "":
			pick = "gemini"
		}
	}

	switch pick {
	case "claude":
		if cfg.ClaudeAPIKey == "" {
			slog.Error("brain: AI_PROVIDER=claude but ANTHROPIC_API_KEY is not set")
			return nil
		}
		slog.Info("brain: using claude", "model", cfg.ClaudeModel)
		return newClaudeProvider(cfg.ClaudeAPIKey, cfg.ClaudeModel, cfg.MaxTokens)
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			slog.Error("brain: AI_PROVIDER=gemini but GOOGLE_API_KEY is not set")
			return nil
		}
		slog.Info("brain: using gemini", "model", cfg.GeminiModel)
		p, err := newGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.MaxTokens)
		if err != nil {
			slog.Error("brain: failed to create gemini provider", "err", err)
			return nil
		}
		return p
	default:
		return nil
	}
}

// Epitaph asks for a one-line farewell from a pet that has just died.
func (b *Brain) Epitaph(ctx context.Context, snap pet.Snapshot) (string, error) {
	if !b.rateAllow() {
		return "", ErrRateLimited
	}
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	history := []Message{{
		Role: "user",
		Text: "Write your epitaph: one short sentence, in character, that the player will read on your gravestone.",
	}}
	resp, err := b.provider.Send(ctx, buildSystemPrompt(snap), history)
	if err != nil {
		return "", fmt.Errorf("AI API error: %w", err)
	}
	text := firstLine(resp.Text)
	if text == "" {
		return "", errors.New("brain: empty response")
	}
	return text, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if line, _, ok := strings.Cut(s, "\n"); ok {
		s = strings.TrimSpace(line)
	}
	return strings.Trim(s, `"“”`)
}

func buildSystemPrompt(snap pet.Snapshot) string {
	sp := species.Lookup(snap.SpeciesID)

	return fmt.Sprintf(`You are %s, a virtual pet %s (%s) who lived in a terminal window.

## Your Personality
%s

## How You Ended
- Cause of death: %s
- Age: %d/%d
- Life stage: %s
- Food: %d/%d
- Energy: %d/%d
- Hygiene: %d/%d
- Happiness: %d/%d

## Guidelines
- Stay in character as %s the %s.
- Reply with a single sentence, no more than 20 words.
- Mention how you died only if it fits naturally.
- No quotation marks, no emoji.`,
		snap.Name, sp.Name, sp.Emoji, sp.Personality,
		snap.Death, snap.Age, pet.AgeMax, snap.Stage,
		snap.Food, pet.FoodMax, snap.Energy, pet.EnergyMax,
		snap.Hygiene, pet.HygieneMax, snap.Happiness, pet.HappinessMax,
		snap.Name, sp.Name)
}

// --- Sliding-window rate limiter ---

func (b *Brain) rateAllow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.rateMax <= 0 {
		return true
	}

	now := time.Now()
	cutoff := now.Add(-b.rateDur)

	// Remove expired entries
	valid := b.window[:0]
	for _, t := range b.window {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	b.window = valid

	if len(b.window) >= b.rateMax {
		return false
	}

	b.window = append(b.window, now)
	return true
}
