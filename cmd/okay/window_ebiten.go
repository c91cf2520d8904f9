//go:build ebiten

// cmd/okay/window_ebiten.go
package main

import (
	"context"

	"github.com/opd-ai/go-okay/pkg/engine"
	"github.com/opd-ai/go-okay/pkg/logging"
	"github.com/opd-ai/go-okay/pkg/render"
	ebitenrender "github.com/opd-ai/go-okay/pkg/render/ebiten"
)

const (
	windowRenderer      = rendererEbiten
	otherWindowRenderer = rendererEngo
	otherWindowBuild    = "build without -tags ebiten"
)

func runWindow(ctx context.Context, game *engine.Game, palette render.Palette, fullscreen bool, logger *logging.Logger) error {
	return ebitenrender.Run(ctx, game, palette, fullscreen, logger)
}
