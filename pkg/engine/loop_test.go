package engine

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewLoop_Interval(t *testing.T) {
	tests := []struct {
		name string
		fps  int
		want time.Duration
	}{
		{"reference_rate", 300, time.Second / 300},
		{"sixty", 60, time.Second / 60},
		{"zero_falls_back", 0, time.Second},
		{"negative_falls_back", -5, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := NewLoop(NewGame(defaultConfig()), tt.fps)
			if got := loop.Interval(); got != tt.want {
				t.Errorf("Interval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoop_Step_AppliesGesturesBeforeUpdate(t *testing.T) {
	game := NewGame(defaultConfig())
	loop := NewLoop(game, 300)
	ctx := context.Background()

	if err := loop.Submit(ctx, Gesture{Kind: GestureBegin, Point: vec(400, 300)}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if err := loop.Submit(ctx, Gesture{Kind: GestureEnd, Point: vec(450, 350)}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	loop.Step()

	if math.Abs(game.Ball.Position.X-407.07) > 0.01 || math.Abs(game.Ball.Position.Y-307.07) > 0.01 {
		t.Errorf("position = %v, want about {407.07 307.07}", game.Ball.Position)
	}
	if game.CurrentTick != 1 {
		t.Errorf("CurrentTick = %d, want 1", game.CurrentTick)
	}
}

func TestLoop_Step_WithoutGestures(t *testing.T) {
	game := NewGame(defaultConfig())
	loop := NewLoop(game, 300)

	loop.Step()
	loop.Step()

	if game.CurrentTick != 2 {
		t.Errorf("CurrentTick = %d, want 2", game.CurrentTick)
	}
	if game.Ball.Active {
		t.Error("ball should stay inactive without input")
	}
}

func TestLoop_Submit_FullQueueHonoursContext(t *testing.T) {
	loop := NewLoop(NewGame(defaultConfig()), 300)
	for i := 0; i < gestureBuffer; i++ {
		if err := loop.Submit(context.Background(), Gesture{Kind: GestureEnd}); err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loop.Submit(ctx, Gesture{Kind: GestureEnd})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Submit on full queue = %v, want context.Canceled", err)
	}
}

func TestLoop_Run_StopsOnCancel(t *testing.T) {
	game := NewGame(defaultConfig())
	loop := NewLoop(game, 1000)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := 0
	done := make(chan error, 1)
	go func() {
		done <- loop.Run(ctx, func(g *Game) {
			frames++
			if frames == 3 {
				cancel()
			}
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if game.CurrentTick < 3 {
		t.Errorf("CurrentTick = %d, want at least 3", game.CurrentTick)
	}
}

func TestGame_Apply(t *testing.T) {
	game := NewGame(defaultConfig())

	game.Apply(Gesture{Kind: GestureBegin, Point: vec(100, 100)})
	if !game.Aiming() {
		t.Fatal("begin gesture should start aiming")
	}

	game.Apply(Gesture{Kind: GestureEnd, Point: vec(100, 110)})
	if game.Aiming() || game.Ball.Velocity != vec(0, 10) {
		t.Errorf("end gesture not applied: aiming=%v velocity=%v", game.Aiming(), game.Ball.Velocity)
	}
}

func TestGestureKind_String(t *testing.T) {
	if GestureBegin.String() != "begin" || GestureEnd.String() != "end" {
		t.Errorf("unexpected names %q %q", GestureBegin, GestureEnd)
	}
}
