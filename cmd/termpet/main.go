package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/moorebrett0/termpet/internal/action"
	"github.com/moorebrett0/termpet/internal/announce"
	"github.com/moorebrett0/termpet/internal/brain"
	"github.com/moorebrett0/termpet/internal/catalog"
	"github.com/moorebrett0/termpet/internal/clock"
	"github.com/moorebrett0/termpet/internal/config"
	"github.com/moorebrett0/termpet/internal/display"
	"github.com/moorebrett0/termpet/internal/engine"
	"github.com/moorebrett0/termpet/internal/game"
	"github.com/moorebrett0/termpet/internal/monitor"
	"github.com/moorebrett0/termpet/internal/onboarding"
	"github.com/moorebrett0/termpet/internal/pet"
	"github.com/moorebrett0/termpet/internal/species"
	"github.com/moorebrett0/termpet/internal/terminal"
)

func main() {
	configPath := flag.String("config", "termpet.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "termpet: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The game owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bundle, err := catalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("loading messages: %w", err)
	}
	if err := bundle.Register(); err != nil {
		return fmt.Errorf("registering messages: %w", err)
	}
	printer := bundle.Printer(cfg.Locale)

	intro := &onboarding.Printer{W: os.Stdout, Delay: time.Millisecond}
	speciesID := cfg.Pet.Species
	if speciesID == "" {
		if speciesID, err = intro.PickSpecies(os.Stdin); err != nil {
			return err
		}
	}
	sp := species.Lookup(speciesID)
	name := cfg.Pet.Name
	intro.Hatch(name, sp)

	b := brain.New(ctx, brain.Config{
		ClaudeAPIKey: cfg.Claude.APIKey,
		ClaudeModel:  cfg.Claude.Model,
		GeminiAPIKey: cfg.Gemini.APIKey,
		GeminiModel:  cfg.Gemini.Model,
		Provider:     cfg.AI.Provider,
		MaxTokens:    cfg.Claude.MaxTokens,
		RateLimit:    cfg.Claude.RateLimit,
		RateWindow:   cfg.Claude.RateWindow,
		Timeout:      cfg.Claude.Timeout,
	})

	var announcer *announce.Announcer
	if cfg.Discord.Enabled {
		if bot := connectDiscord(cfg.Discord.BotToken); bot != nil {
			defer bot.Close()
			announcer = announce.New(bot, cfg.Discord.ChannelID, name, sp, cfg.Discord.QueueSize)
			announcer.Hatched()
		}
	}

	intro.PrintStartup(name, []onboarding.Check{
		{Label: "engine running", OK: true},
		{Label: "ai connected", OK: b != nil},
		{Label: "discord connected", OK: announcer != nil},
	})

	keyboard, err := terminal.OpenKeyboard(os.Stdin)
	if err != nil {
		return err
	}
	defer keyboard.Close()

	mon := monitor.New(int(os.Stdout.Fd()), time.Second, func(s monitor.Size) {
		slog.Debug("monitor: terminal resized", "size", s)
	})
	go mon.Run(ctx)

	screen := terminal.NewScreen(os.Stdout, mon.Width)
	screen.Clear()
	defer screen.Close()

	p := pet.New(pet.NewState(name, sp.ID, clock.System))
	renderer := display.NewRenderer(screen, printer, sp.Emoji)
	session := &game.Session{
		Pet:        p,
		Engine:     engine.New(p, engine.DefaultTimings()),
		Dispatcher: action.New(p, renderer, action.DefaultDurations()),
		Renderer:   renderer,
		Input:      keyboard,
		Announcer:  announcer,
		Goodbye:    printer.Sprintf("screen.goodbye"),
		Drain:      game.DefaultDrain,
	}
	if b != nil {
		session.Brain = b
	}

	slog.Info("termpet: starting", "name", name, "species", sp.ID)
	return session.Run(ctx)
}

// connectDiscord returns nil when Discord is unreachable; the game runs
// without announcements.
func connectDiscord(token string) *announce.Bot {
	bot, err := announce.NewBot(token)
	if err != nil {
		slog.Error("discord: disabled", "err", err)
		return nil
	}
	if err := bot.Open(); err != nil {
		slog.Error("discord: disabled", "err", err)
		return nil
	}
	return bot
}
