// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-okay/pkg/entity"
	"github.com/opd-ai/go-okay/pkg/logging"
)

// NullRenderer is a headless implementation of entity.Renderer that logs
// every draw call at debug level.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a new NullRenderer with structured logging.
// A nil logger discards output.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns the number of presented frames
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called", "frame", d.frames)
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called", "frame", d.frames)
	d.frames++
}

// RenderBall implements entity.Renderer.
func (d *NullRenderer) RenderBall(ball *entity.Ball) {
	ctx := context.Background()
	if ball == nil {
		d.logger.Debug(ctx, "RenderBall called with nil ball")
		return
	}
	d.logger.Debug(ctx, "RenderBall called",
		"ball_id", ball.ID,
		"x", ball.Position.X,
		"y", ball.Position.Y,
		"radius", ball.Radius,
	)
}

// RenderTarget implements entity.Renderer.
func (d *NullRenderer) RenderTarget(target *entity.Target) {
	ctx := context.Background()
	if target == nil {
		d.logger.Debug(ctx, "RenderTarget called with nil target")
		return
	}
	d.logger.Debug(ctx, "RenderTarget called",
		"target_id", target.ID,
		"x", target.Rect.X,
		"y", target.Rect.Y,
	)
}
