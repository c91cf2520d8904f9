// pkg/engine/loop.go
package engine

import (
	"context"
	"time"

	"github.com/opd-ai/go-okay/pkg/physics"
)

// GestureKind distinguishes the two halves of a drag
type GestureKind int

const (
	// GestureBegin is a primary button press
	GestureBegin GestureKind = iota
	// GestureEnd is the matching release
	GestureEnd
)

// String returns a readable gesture name for logs
func (k GestureKind) String() string {
	if k == GestureBegin {
		return "begin"
	}
	return "end"
}

// Gesture is one input event in game coordinates
type Gesture struct {
	Kind  GestureKind
	Point physics.Vector2D
}

// Apply dispatches a gesture to OnGestureBegin or OnGestureEnd
func (g *Game) Apply(gesture Gesture) {
	switch gesture.Kind {
	case GestureBegin:
		g.OnGestureBegin(gesture.Point)
	case GestureEnd:
		g.OnGestureEnd(gesture.Point)
	}
}

// gestureBuffer bounds how far input polling may run ahead of the ticks
const gestureBuffer = 64

// Loop drives a Game at a fixed tick rate.
// Gestures may be submitted from any goroutine; the game itself is only
// touched by the goroutine calling Run or Step.
type Loop struct {
	game     *Game
	interval time.Duration
	gestures chan Gesture
}

// NewLoop creates a loop ticking fps times per second.
// A non-positive fps falls back to one tick per second.
func NewLoop(game *Game, fps int) *Loop {
	if fps <= 0 {
		fps = 1
	}
	return &Loop{
		game:     game,
		interval: time.Second / time.Duration(fps),
		gestures: make(chan Gesture, gestureBuffer),
	}
}

// Interval returns the time between ticks
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Submit queues a gesture for the next tick.
// It blocks while the queue is full and fails only when ctx is done.
func (l *Loop) Submit(ctx context.Context, gesture Gesture) error {
	select {
	case l.gestures <- gesture:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Step runs one tick: every gesture queued so far, in arrival order, then
// one game update.
func (l *Loop) Step() {
	for pending := len(l.gestures); pending > 0; pending-- {
		l.game.Apply(<-l.gestures)
	}
	l.game.Update()
}

// Run ticks until ctx is cancelled, calling frame after every tick.
// It returns ctx.Err().
func (l *Loop) Run(ctx context.Context, frame func(*Game)) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Step()
			if frame != nil {
				frame(l.game)
			}
		}
	}
}
