// Package main is the entry point for Ultima Console.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/ultimaconsole/internal/cli"
	"github.com/samdwyer/ultimaconsole/internal/config"
	"github.com/samdwyer/ultimaconsole/internal/game"
	"github.com/samdwyer/ultimaconsole/internal/gamedata"
	"github.com/samdwyer/ultimaconsole/internal/loader"
	"github.com/samdwyer/ultimaconsole/internal/logging"
	"github.com/samdwyer/ultimaconsole/internal/setup"
	"github.com/samdwyer/ultimaconsole/internal/telemetry"
	"github.com/samdwyer/ultimaconsole/internal/tui"
	"github.com/samdwyer/ultimaconsole/internal/ui"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	worldPath := flag.String("world", "", "path to a Lua world script")
	frontend := flag.String("frontend", "", "frontend: tcell, tea or plain")
	scriptPath := flag.String("script", "", "play commands from a file and exit")
	seed := flag.Int64("seed", 0, "random seed for the generated world")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ultimaconsole %s\n", version)
		return
	}

	// Not fatal: variables may be set directly.
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Failed to apply environment: %v", err)
	}
	if *worldPath != "" {
		cfg.World = *worldPath
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *scriptPath != "" || !isTerminal() {
		cfg.Frontend = config.FrontendPlain
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if err := run(cfg, *scriptPath); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func run(cfg config.Config, scriptPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Telemetry.Enabled && cfg.Telemetry.APIKey != "" {
		shutdown, err := telemetry.Setup(ctx, cfg.TelemetryOptions())
		if err != nil {
			// Game still works without observability.
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	items, err := cfg.ItemRegistry()
	if err != nil {
		return err
	}

	w, err := buildWorld(ctx, cfg, items)
	if err != nil {
		return err
	}

	g, err := game.New(w, cfg.Game(), items, logger)
	if err != nil {
		return fmt.Errorf("starting game: %w", err)
	}
	actor := game.NewActor(g)
	logger.Info("game started", "frontend", cfg.Frontend, "width", w.Width, "height", w.Height)

	eg, ctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(ctx)
	eg.Go(func() error {
		return actor.Run(runCtx)
	})
	eg.Go(func() error {
		defer cancel()
		return runFrontend(runCtx, cfg.Frontend, actor, scriptPath)
	})
	return eg.Wait()
}

// buildWorld loads the configured Lua world or generates the default one.
// Catalogue glyphs and colours fill in whatever a script leaves out.
func buildWorld(ctx context.Context, cfg config.Config, items *gamedata.ItemRegistry) (setup.World, error) {
	_, span := telemetry.Tracer("setup").Start(ctx, "world.setup")
	defer span.End()

	npcs, err := cfg.NPCRegistry()
	if err != nil {
		return setup.World{}, err
	}

	if cfg.World != "" {
		span.SetAttributes(attribute.String("world.script", cfg.World))
		w, err := loader.LoadFile(cfg.World)
		if err != nil {
			span.RecordError(err)
			return setup.World{}, err
		}
		w.ApplyCatalogue(npcs, items)
		return w, nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	span.SetAttributes(attribute.Int64("world.seed", seed))

	w, err := setup.Default(cfg.Setup(), npcs, items, rand.New(rand.NewSource(seed)))
	if err != nil {
		span.RecordError(err)
		return setup.World{}, fmt.Errorf("generating world: %w", err)
	}
	return w, nil
}

func runFrontend(ctx context.Context, name string, actor *game.Actor, scriptPath string) error {
	switch strings.ToLower(name) {
	case config.FrontendTea:
		return tui.Run(ctx, actor)
	case config.FrontendPlain:
		c := cli.New(actor)
		if scriptPath != "" {
			f, err := os.Open(scriptPath)
			if err != nil {
				return fmt.Errorf("opening script: %w", err)
			}
			defer f.Close()
			c.In = f
			c.EchoInput = true
		}
		return c.Run(ctx)
	default:
		return ui.Run(ctx, actor)
	}
}

// openLog opens the log file. Full-screen frontends own the terminal, so
// logs never go to stderr.
func openLog(cfg config.Config) (*slog.Logger, func() error, error) {
	logger, closeLog, err := logging.Open(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return logger, closeLog, nil
}

// isTerminal reports whether stdout is a terminal.
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
