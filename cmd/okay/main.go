// cmd/okay/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/opd-ai/go-okay/pkg/config"
	"github.com/opd-ai/go-okay/pkg/engine"
	"github.com/opd-ai/go-okay/pkg/event"
	"github.com/opd-ai/go-okay/pkg/logging"
	"github.com/opd-ai/go-okay/pkg/render"
)

// Renderer names accepted by -renderer. Only one window renderer is linked
// into a binary; see window_engo.go and window_ebiten.go.
const (
	rendererEngo     = "engo"
	rendererEbiten   = "ebiten"
	rendererTerminal = "terminal"
	rendererNull     = "null"
)

func main() {
	configPath := flag.String("config", "okay.json", "Path to configuration file")
	renderer := flag.String("renderer", windowRenderer, "Renderer type: '"+windowRenderer+"', 'terminal' or 'null'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (window renderers only)")
	ticks := flag.Uint64("ticks", 0, "Ticks to run with the null renderer (0 runs until interrupted)")
	saveConfig := flag.Bool("save-config", false, "Write the effective configuration to -config and exit")
	logLevel := flag.String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR); overrides OKAY_LOG_LEVEL")
	flag.Parse()

	logger := logging.NewLogger()
	if *logLevel != "" {
		logger = logging.NewLoggerWithWriter(os.Stderr, logging.ParseLevel(*logLevel))
	}

	ctx := logging.WithSessionID(context.Background(), logging.GenerateSessionID())
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameConfig, err := loadConfig(ctx, *configPath, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}

	if *saveConfig {
		if err := config.SaveConfig(gameConfig, *configPath); err != nil {
			logger.Error(ctx, "Failed to save configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "Saved configuration file", "config_path", *configPath)
		return
	}

	palette, err := render.NewPalette(gameConfig.Colors)
	if err != nil {
		logger.Error(ctx, "Invalid colours", err)
		os.Exit(1)
	}

	game := engine.NewGame(gameConfig)
	subscribeEvents(ctx, game.EventBus, logger)

	logger.Info(ctx, "Starting game",
		"renderer", *renderer,
		"width", gameConfig.Screen.Width,
		"height", gameConfig.Screen.Height,
		"fps", gameConfig.Screen.FPS,
	)

	if err := run(ctx, *renderer, game, palette, *fullscreen, *ticks, logger); err != nil {
		logger.Error(ctx, "Game stopped with error", err, "renderer", *renderer)
		os.Exit(1)
	}

	logger.Info(ctx, "Game finished", "ticks", game.CurrentTick)
}

// run drives game with the named renderer until it finishes
func run(ctx context.Context, renderer string, game *engine.Game, palette render.Palette, fullscreen bool, ticks uint64, logger *logging.Logger) error {
	switch renderer {
	case windowRenderer:
		return runWindow(ctx, game, palette, fullscreen, logger)
	case otherWindowRenderer:
		return fmt.Errorf("renderer %q is not linked into this binary (%s)", renderer, otherWindowBuild)
	case rendererTerminal:
		return render.RunTerminal(ctx, game, palette, logger)
	case rendererNull:
		return runHeadless(ctx, game, ticks, logger)
	default:
		return fmt.Errorf("unknown renderer %q", renderer)
	}
}

// loadConfig reads the configuration file, falling back to defaults when it
// does not exist, then applies environment overrides and validates.
func loadConfig(ctx context.Context, path string, logger *logging.Logger) (*config.GameConfig, error) {
	gameConfig, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		gameConfig, err = config.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	env, err := config.LoadConfigFromEnv()
	if err != nil {
		return nil, logging.WrapError(err, "failed to read environment configuration")
	}
	env.Apply(gameConfig)

	if err := config.Validate(gameConfig); err != nil {
		return nil, logging.WrapError(err, "invalid configuration")
	}
	return gameConfig, nil
}

// subscribeEvents logs game events
func subscribeEvents(ctx context.Context, bus *event.Bus, logger *logging.Logger) {
	bus.Subscribe(event.BallLaunched, func(e event.Event) {
		if ev, ok := e.(*event.BallEvent); ok {
			logger.Debug(ctx, "Ball placed", "x", ev.Position.X, "y", ev.Position.Y)
		}
	})
	bus.Subscribe(event.BallReleased, func(e event.Event) {
		if ev, ok := e.(*event.BallEvent); ok {
			logger.Info(ctx, "Ball released",
				"x", ev.Position.X, "y", ev.Position.Y,
				"vx", ev.Velocity.X, "vy", ev.Velocity.Y,
			)
		}
	})
	bus.Subscribe(event.GestureRejected, func(e event.Event) {
		if ev, ok := e.(*event.GestureEvent); ok {
			logger.Debug(ctx, "Launch refused near target", "x", ev.Point.X, "y", ev.Point.Y)
		}
	})
	bus.Subscribe(event.TargetHit, func(e event.Event) {
		if ev, ok := e.(*event.TargetEvent); ok {
			logger.Info(ctx, "Target hit", "target_id", ev.TargetID, "edge", ev.Edge.String())
		}
	})
	bus.Subscribe(event.TargetsReset, func(e event.Event) {
		if ev, ok := e.(*event.ResetEvent); ok {
			logger.Info(ctx, "Targets reset", "restored", len(ev.Restored))
		}
	})
	bus.Subscribe(event.BallLost, func(e event.Event) {
		logger.Debug(ctx, "Ball left the screen")
	})
}

// runHeadless drives the game without a window. With ticks > 0 it steps that
// many ticks as fast as possible; otherwise it runs in real time until ctx is
// cancelled.
func runHeadless(ctx context.Context, game *engine.Game, ticks uint64, logger *logging.Logger) error {
	renderer := render.NewNullRenderer(logger)
	loop := engine.NewLoop(game, game.Config.Screen.FPS)

	if ticks == 0 {
		err := loop.Run(ctx, func(g *engine.Game) { g.Render(renderer) })
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	for i := uint64(0); i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return nil
		}
		loop.Step()
		game.Render(renderer)
	}
	return nil
}
