// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-okay/pkg/entity"
	"github.com/opd-ai/go-okay/pkg/physics"
	"github.com/opd-ai/go-okay/pkg/render"
)

// sprite is one drawable ECS entity
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// spriteSystem is the part of common.RenderSystem the renderer needs
type spriteSystem interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
}

// EngoRenderer implements entity.Renderer on top of the engo render system.
// Each game entity owns one sprite; sprites not drawn in a frame are hidden
// on Present.
type EngoRenderer struct {
	system  spriteSystem
	camera  *Camera
	palette render.Palette

	sprites map[entity.ID]*sprite
	drawn   map[entity.ID]bool
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(system spriteSystem, camera *Camera, palette render.Palette) *EngoRenderer {
	return &EngoRenderer{
		system:  system,
		camera:  camera,
		palette: palette,
		sprites: make(map[entity.ID]*sprite),
		drawn:   make(map[entity.ID]bool),
	}
}

// RenderBall implements entity.Renderer
func (r *EngoRenderer) RenderBall(ball *entity.Ball) {
	s := r.getOrCreateSprite(ball.ID, common.Circle{}, r.palette.Ball)
	s.Position = r.camera.WorldToScreen(ball.Position.Sub(physics.Vector2D{X: ball.Radius, Y: ball.Radius}))
	s.Width = float32(2 * ball.Radius)
	s.Height = float32(2 * ball.Radius)
	r.show(ball.ID, s)
}

// RenderTarget implements entity.Renderer
func (r *EngoRenderer) RenderTarget(target *entity.Target) {
	s := r.getOrCreateSprite(target.ID, common.Rectangle{}, r.palette.Target)
	s.Position = r.camera.WorldToScreen(physics.Vector2D{X: target.Rect.X, Y: target.Rect.Y})
	s.Width = float32(target.Rect.Width)
	s.Height = float32(target.Rect.Height)
	r.show(target.ID, s)
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	clear(r.drawn)
}

// Present implements entity.Renderer. The render system draws whatever is
// visible, so all that is left is hiding what the frame skipped.
func (r *EngoRenderer) Present() {
	for id, s := range r.sprites {
		s.Hidden = !r.drawn[id]
	}
}

func (r *EngoRenderer) show(id entity.ID, s *sprite) {
	r.drawn[id] = true
	s.Hidden = false
}

// getOrCreateSprite gets an existing sprite or registers a new one
func (r *EngoRenderer) getOrCreateSprite(id entity.ID, drawable common.Drawable, clr color.Color) *sprite {
	if s, exists := r.sprites[id]; exists {
		return s
	}

	s := &sprite{BasicEntity: ecs.NewBasic()}
	s.RenderComponent = common.RenderComponent{
		Drawable: drawable,
		Color:    clr,
	}
	r.sprites[id] = s
	r.system.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)

	return s
}

// Sprites returns the number of registered sprites
func (r *EngoRenderer) Sprites() int {
	return len(r.sprites)
}
