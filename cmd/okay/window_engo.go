//go:build !ebiten

// cmd/okay/window_engo.go
package main

import (
	"context"

	"github.com/opd-ai/go-okay/pkg/engine"
	"github.com/opd-ai/go-okay/pkg/logging"
	"github.com/opd-ai/go-okay/pkg/render"
	engorender "github.com/opd-ai/go-okay/pkg/render/engo"
)

// engo and ebiten each link their own copy of GLFW, so a binary carries one.
const (
	windowRenderer      = rendererEngo
	otherWindowRenderer = rendererEbiten
	otherWindowBuild    = "build with -tags ebiten"
)

func runWindow(ctx context.Context, game *engine.Game, palette render.Palette, fullscreen bool, logger *logging.Logger) error {
	engorender.Run(ctx, game, palette, fullscreen, logger)
	return nil
}
