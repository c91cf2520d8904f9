// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/opd-ai/go-okay/pkg/physics"
)

// Reference layout and tuning
const (
	DefaultWidth           = 1470
	DefaultHeight          = 890
	DefaultFPS             = 300
	DefaultBallRadius      = 10
	DefaultBallSpeed       = 10
	DefaultCollisionOffset = 10
	DefaultTitle           = "Okay?"

	// TargetCount is the number of targets on the board
	TargetCount = 2
)

// GameConfig contains configuration for a game
type GameConfig struct {
	Screen          ScreenConfig   `json:"screen"`
	Ball            BallConfig     `json:"ball"`
	CollisionOffset float64        `json:"collisionOffset"`
	Targets         []TargetConfig `json:"targets"`
	Colors          ColorConfig    `json:"colors"`
}

// ScreenConfig contains the play area and frame rate
type ScreenConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	FPS    int    `json:"fps"`
	Title  string `json:"title"`
}

// BallConfig contains the ball's fixed properties
type BallConfig struct {
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`
}

// TargetConfig contains the rectangle of one target
type TargetConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect converts the target configuration to a physics rectangle
func (t TargetConfig) Rect() physics.Rect {
	return physics.Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// ColorConfig contains colors as #rrggbb strings
type ColorConfig struct {
	Background string `json:"background"`
	Ball       string `json:"ball"`
	Target     string `json:"target"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the reference game configuration
func DefaultConfig() *GameConfig {
	return DefaultConfigForScreen(DefaultWidth, DefaultHeight)
}

// DefaultConfigForScreen returns the reference configuration scaled to a screen size
func DefaultConfigForScreen(width, height int) *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{
			Width:  width,
			Height: height,
			FPS:    DefaultFPS,
			Title:  DefaultTitle,
		},
		Ball: BallConfig{
			Radius: DefaultBallRadius,
			Speed:  DefaultBallSpeed,
		},
		CollisionOffset: DefaultCollisionOffset,
		Targets:         DefaultTargets(width, height),
		Colors: ColorConfig{
			Background: "#e0ebeb",
			Ball:       "#3c3c3c",
			Target:     "#ffffff",
		},
	}
}

// DefaultTargets lays out the two targets for a screen size: each a quarter of
// the screen wide and a sixteenth tall, horizontally centered, with top edges
// at 5/16 and 11/16 of the height. Integer division keeps them on whole pixels.
func DefaultTargets(width, height int) []TargetConfig {
	x := float64(width * 3 / 8)
	w := float64(width / 4)
	h := float64(height / 16)
	return []TargetConfig{
		{X: x, Y: float64(height * 5 / 16), Width: w, Height: h},
		{X: x, Y: float64(height * 11 / 16), Width: w, Height: h},
	}
}

// Validate checks a configuration for values the game cannot run with
func Validate(config *GameConfig) error {
	var errs []error

	if config.Screen.Width <= 0 || config.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", config.Screen.Width, config.Screen.Height))
	}
	if config.Screen.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", config.Screen.FPS))
	}
	if !isFinite(config.Ball.Radius) || config.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive and finite, got %g", config.Ball.Radius))
	}
	if !isFinite(config.Ball.Speed) || config.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball speed must be positive and finite, got %g", config.Ball.Speed))
	}
	if !isFinite(config.CollisionOffset) || config.CollisionOffset < 0 {
		errs = append(errs, fmt.Errorf("collision offset must be non-negative and finite, got %g", config.CollisionOffset))
	}

	if len(config.Targets) != TargetCount {
		errs = append(errs, fmt.Errorf("expected %d targets, got %d", TargetCount, len(config.Targets)))
	}
	for i, target := range config.Targets {
		if !isFinite(target.X) || !isFinite(target.Y) || !isFinite(target.Width) || !isFinite(target.Height) {
			errs = append(errs, fmt.Errorf("target %d must have finite coordinates, got %+v", i, target))
			continue
		}
		if target.Width <= 0 || target.Height <= 0 {
			errs = append(errs, fmt.Errorf("target %d must have positive size, got %gx%g", i, target.Width, target.Height))
		}
	}

	for name, value := range map[string]string{
		"background": config.Colors.Background,
		"ball":       config.Colors.Ball,
		"target":     config.Colors.Target,
	} {
		if _, err := colorful.Hex(value); err != nil {
			errs = append(errs, fmt.Errorf("invalid %s color %q: %w", name, value, err))
		}
	}

	return errors.Join(errs...)
}

// isFinite reports whether v is neither NaN nor infinite
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
