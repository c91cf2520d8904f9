// pkg/config/env_config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// EnvironmentConfig holds overrides read from OKAY_* environment variables.
// A nil field means the variable was not set.
type EnvironmentConfig struct {
	ScreenWidth     *int
	ScreenHeight    *int
	FPS             *int
	BallSpeed       *float64
	BallRadius      *float64
	CollisionOffset *float64
}

// LoadConfigFromEnv reads overrides from the environment.
// Unset or empty variables are left nil; malformed ones are reported.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	env := &EnvironmentConfig{}
	var errs []error

	errs = appendErr(errs, readInt("OKAY_SCREEN_WIDTH", &env.ScreenWidth))
	errs = appendErr(errs, readInt("OKAY_SCREEN_HEIGHT", &env.ScreenHeight))
	errs = appendErr(errs, readInt("OKAY_FPS", &env.FPS))
	errs = appendErr(errs, readFloat("OKAY_BALL_SPEED", &env.BallSpeed))
	errs = appendErr(errs, readFloat("OKAY_BALL_RADIUS", &env.BallRadius))
	errs = appendErr(errs, readFloat("OKAY_COLLISION_OFFSET", &env.CollisionOffset))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := ValidateEnvironmentConfig(env); err != nil {
		return nil, err
	}
	return env, nil
}

// ValidateEnvironmentConfig checks the overrides that are set.
// Sizes, fps, speed and radius must be positive; the offset may be zero.
// Floats must be finite.
func ValidateEnvironmentConfig(env *EnvironmentConfig) error {
	var errs []error
	if env.ScreenWidth != nil && *env.ScreenWidth <= 0 {
		errs = append(errs, fmt.Errorf("screen width must be positive, got %d", *env.ScreenWidth))
	}
	if env.ScreenHeight != nil && *env.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen height must be positive, got %d", *env.ScreenHeight))
	}
	if env.FPS != nil && *env.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", *env.FPS))
	}
	if env.BallSpeed != nil && (!isFinite(*env.BallSpeed) || *env.BallSpeed <= 0) {
		errs = append(errs, fmt.Errorf("ball speed must be positive and finite, got %g", *env.BallSpeed))
	}
	if env.BallRadius != nil && (!isFinite(*env.BallRadius) || *env.BallRadius <= 0) {
		errs = append(errs, fmt.Errorf("ball radius must be positive and finite, got %g", *env.BallRadius))
	}
	if env.CollisionOffset != nil && (!isFinite(*env.CollisionOffset) || *env.CollisionOffset < 0) {
		errs = append(errs, fmt.Errorf("collision offset must be non-negative and finite, got %g", *env.CollisionOffset))
	}
	return errors.Join(errs...)
}

// Apply overlays the set overrides onto config.
// When the screen size changes and config still uses the default target
// layout, the targets are laid out again for the new size.
func (env *EnvironmentConfig) Apply(config *GameConfig) {
	oldWidth, oldHeight := config.Screen.Width, config.Screen.Height
	defaultLayout := reflect.DeepEqual(config.Targets, DefaultTargets(oldWidth, oldHeight))

	if env.ScreenWidth != nil {
		config.Screen.Width = *env.ScreenWidth
	}
	if env.ScreenHeight != nil {
		config.Screen.Height = *env.ScreenHeight
	}
	if env.FPS != nil {
		config.Screen.FPS = *env.FPS
	}
	if env.BallSpeed != nil {
		config.Ball.Speed = *env.BallSpeed
	}
	if env.BallRadius != nil {
		config.Ball.Radius = *env.BallRadius
	}
	if env.CollisionOffset != nil {
		config.CollisionOffset = *env.CollisionOffset
	}

	resized := config.Screen.Width != oldWidth || config.Screen.Height != oldHeight
	if resized && defaultLayout {
		config.Targets = DefaultTargets(config.Screen.Width, config.Screen.Height)
	}
}

func readInt(key string, dst **int) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = &v
	return nil
}

func readFloat(key string, dst **float64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = &v
	return nil
}

func appendErr(errs []error, err error) []error {
	if err != nil {
		return append(errs, err)
	}
	return errs
}
