package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// clearEnv unsets every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TERMPET_NAME", "TERMPET_SPECIES", "TERMPET_LOG_PATH", "TERMPET_LOG_LEVEL",
		"TERMPET_LOCALE", "TERMPET_DISCORD", "AI_PROVIDER", "ANTHROPIC_API_KEY",
		"GOOGLE_API_KEY", "DISCORD_BOT_TOKEN", "DISCORD_CHANNEL_ID",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := load(filepath.Join(t.TempDir(), "nope.yaml"), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(defaults(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadLayersYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "termpet.yaml", `
pet:
  name: Mochi
  species: crab
log:
  level: debug
claude:
  model: claude-test
  timeout: 3s
`)
	t.Setenv("TERMPET_NAME", "Biscuit")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := load(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := defaults()
	want.Pet = PetConfig{Name: "Biscuit", Species: "crab"}
	want.Log.Level = "debug"
	want.Claude.Model = "claude-test"
	want.Claude.Timeout = 3 * time.Second
	want.Claude.APIKey = "sk-test"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if cfg.Log.SlogLevel() != slog.LevelDebug {
		t.Fatalf("slog level = %s, want DEBUG", cfg.Log.SlogLevel())
	}
}

func TestDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	dotEnv := writeFile(t, ".env", `
# secrets
export GOOGLE_API_KEY="from-dotenv"
TERMPET_SPECIES='turtle'
`)
	t.Setenv("TERMPET_SPECIES", "penguin")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.yaml"), dotEnv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Gemini.APIKey != "from-dotenv" {
		t.Fatalf("gemini key = %q, want from-dotenv", cfg.Gemini.APIKey)
	}
	if cfg.Pet.Species != "penguin" {
		t.Fatalf("species = %q, want penguin", cfg.Pet.Species)
	}
}

func TestDotEnvStripsInlineComments(t *testing.T) {
	clearEnv(t)
	dotEnv := writeFile(t, ".env", `
TERMPET_NAME=Mochi # my pet
TERMPET_SPECIES=crab # shell
`)

	cfg, err := load(filepath.Join(t.TempDir(), "missing.yaml"), dotEnv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := PetConfig{Name: "Mochi", Species: "crab"}
	if diff := cmp.Diff(want, cfg.Pet); diff != "" {
		t.Fatalf("pet mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "termpet.yaml", `
pet:
  name: FromYAML
  species: crab
log:
  level: warn
`)
	dotEnv := writeFile(t, ".env", `
TERMPET_NAME=FromDotEnv
TERMPET_LOG_LEVEL=debug
`)
	t.Setenv("TERMPET_LOG_LEVEL", "error")

	cfg, err := load(path, dotEnv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// yaml < .env < environment
	want := PetConfig{Name: "FromDotEnv", Species: "crab"}
	if diff := cmp.Diff(want, cfg.Pet); diff != "" {
		t.Fatalf("pet mismatch (-want +got):\n%s", diff)
	}
	if cfg.Log.Level != "error" {
		t.Fatalf("log level = %q, want error", cfg.Log.Level)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad yaml", "pet: [", "parsing config"},
		{"unknown species", "pet:\n  species: dragon\n", "unknown species"},
		{"blank name", "pet:\n  name: '  '\n", "pet.name"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"bad provider", "ai:\n  provider: hal\n", "ai.provider"},
		{"discord without token", "discord:\n  enabled: true\n  channel_id: '1'\n", "DISCORD_BOT_TOKEN"},
		{"discord without channel", "discord:\n  enabled: true\n  bot_token: abc\n", "DISCORD_CHANNEL_ID"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := writeFile(t, "termpet.yaml", tt.yaml)
			_, err := load(path, "")
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
