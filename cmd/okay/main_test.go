// cmd/okay/main_test.go
package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opd-ai/go-okay/pkg/config"
	"github.com/opd-ai/go-okay/pkg/engine"
	"github.com/opd-ai/go-okay/pkg/event"
	"github.com/opd-ai/go-okay/pkg/logging"
	"github.com/opd-ai/go-okay/pkg/physics"
	"github.com/opd-ai/go-okay/pkg/render"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	cfg, err := loadConfig(context.Background(), path, logging.Discard())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Screen.Width != config.DefaultWidth || cfg.Screen.Height != config.DefaultHeight {
		t.Errorf("screen = %dx%d, want defaults", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("OKAY_BALL_SPEED", "25")
	path := filepath.Join(t.TempDir(), "missing.json")

	cfg, err := loadConfig(context.Background(), path, logging.Discard())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Ball.Speed != 25 {
		t.Errorf("ball speed = %v, want 25", cfg.Ball.Speed)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{"malformed_file", "{not json", nil},
		{"malformed_env", "", map[string]string{"OKAY_FPS": "fast"}},
		{"invalid_env", "", map[string]string{"OKAY_FPS": "-1"}},
		{"infinite_env_speed", "", map[string]string{"OKAY_BALL_SPEED": "Inf"}},
		{"nan_env_offset", "", map[string]string{"OKAY_COLLISION_OFFSET": "NaN"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "okay.json")
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			if _, err := loadConfig(context.Background(), path, logging.Discard()); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRunHeadless_StepsRequestedTicks(t *testing.T) {
	game := engine.NewGame(config.DefaultConfig())

	if err := runHeadless(context.Background(), game, 25, logging.Discard()); err != nil {
		t.Fatalf("runHeadless: %v", err)
	}
	if game.CurrentTick != 25 {
		t.Errorf("CurrentTick = %d, want 25", game.CurrentTick)
	}
}

func TestRunHeadless_StopsOnCancel(t *testing.T) {
	game := engine.NewGame(config.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runHeadless(ctx, game, 0, logging.Discard()); err != nil {
		t.Errorf("runHeadless = %v, want nil on cancel", err)
	}
}

func TestRun_RendererSelection(t *testing.T) {
	palette := render.DefaultPalette()

	tests := []struct {
		name     string
		renderer string
		wantErr  string
	}{
		{"null", rendererNull, ""},
		{"unlinked_window", otherWindowRenderer, "not linked"},
		{"unknown", "bogus", "unknown renderer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := engine.NewGame(config.DefaultConfig())
			err := run(context.Background(), tt.renderer, game, palette, false, 3, logging.Discard())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("run: %v", err)
				}
				if game.CurrentTick != 3 {
					t.Errorf("CurrentTick = %d, want 3", game.CurrentTick)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("run = %v, want error containing %q", err, tt.wantErr)
			}
			if game.CurrentTick != 0 {
				t.Errorf("CurrentTick = %d, want 0 for a rejected renderer", game.CurrentTick)
			}
		})
	}
}

func TestWindowRenderer_OnePerBinary(t *testing.T) {
	if windowRenderer == otherWindowRenderer {
		t.Fatalf("window renderers must differ, both are %q", windowRenderer)
	}
	for _, name := range []string{windowRenderer, otherWindowRenderer} {
		if name != rendererEngo && name != rendererEbiten {
			t.Errorf("unexpected window renderer %q", name)
		}
	}
}

func TestSubscribeEvents_RegistersEveryType(t *testing.T) {
	game := engine.NewGame(config.DefaultConfig())
	subscribeEvents(context.Background(), game.EventBus, logging.Discard())

	// Publishing must not panic for any event the game emits.
	game.OnGestureBegin(physics.Vector2D{X: 700, Y: 300})
	game.OnGestureBegin(physics.Vector2D{X: 700, Y: 250})
	game.OnGestureEnd(physics.Vector2D{X: 700, Y: 260})
	for game.Ball.Active {
		game.Update()
	}
	game.EventBus.Publish(event.NewResetEvent(game, []uint64{1}))
}
