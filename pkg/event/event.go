// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-okay/pkg/physics"
)

// Type represents the type of event
type Type string

// Game event types
const (
	BallLaunched    Type = "ball_launched"
	BallReleased    Type = "ball_released"
	GestureRejected Type = "gesture_rejected"
	TargetHit       Type = "target_hit"
	TargetsReset    Type = "targets_reset"
	BallLost        Type = "ball_lost"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is a registered handler. Cancel removes it from the bus.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching.
// Handlers run synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

// unsubscribe removes the handler with the given id, if still registered
func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, sub := range subs {
		if sub.id != id {
			continue
		}
		// Copy so a Publish iterating the old slice is unaffected.
		remaining := make([]subscriber, 0, len(subs)-1)
		remaining = append(remaining, subs[:i]...)
		remaining = append(remaining, subs[i+1:]...)
		if len(remaining) == 0 {
			delete(b.handlers, eventType)
		} else {
			b.handlers[eventType] = remaining
		}
		return
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(event)
	}
}

// BallEvent reports a change in the ball's flight
type BallEvent struct {
	BaseEvent
	BallID   uint64
	Position physics.Vector2D
	Velocity physics.Vector2D
}

// NewBallEvent creates a new ball event
func NewBallEvent(eventType Type, source interface{}, ballID uint64, position, velocity physics.Vector2D) *BallEvent {
	return &BallEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		BallID:   ballID,
		Position: position,
		Velocity: velocity,
	}
}

// TargetEvent reports a target being knocked out
type TargetEvent struct {
	BaseEvent
	TargetID uint64
	BallID   uint64
	Edge     physics.Edge
}

// NewTargetEvent creates a new target hit event
func NewTargetEvent(source interface{}, targetID, ballID uint64, edge physics.Edge) *TargetEvent {
	return &TargetEvent{
		BaseEvent: BaseEvent{
			EventType: TargetHit,
			Source:    source,
		},
		TargetID: targetID,
		BallID:   ballID,
		Edge:     edge,
	}
}

// ResetEvent reports targets coming back after the ball left the screen
type ResetEvent struct {
	BaseEvent
	Restored []uint64
}

// NewResetEvent creates a new targets reset event
func NewResetEvent(source interface{}, restored []uint64) *ResetEvent {
	return &ResetEvent{
		BaseEvent: BaseEvent{
			EventType: TargetsReset,
			Source:    source,
		},
		Restored: restored,
	}
}

// GestureEvent reports a gesture the game refused
type GestureEvent struct {
	BaseEvent
	Point physics.Vector2D
}

// NewGestureEvent creates a new gesture event
func NewGestureEvent(eventType Type, source interface{}, point physics.Vector2D) *GestureEvent {
	return &GestureEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Point: point,
	}
}
