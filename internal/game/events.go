package game

import "serpent/internal/sim"

type EventType int

const (
	EventGameStarted EventType = iota
	EventFoodEaten
	EventPauseToggled
	EventGameOver
	EventGameWon
)

type Event struct {
	Type  EventType
	Cell  sim.Cell // food/head cell for EventFoodEaten
	Score int
}

type EventHandler func(Event)

// EventBus fans game outcomes out to audio, particles, and logging without
// the frame loop knowing who listens. Synchronous, single-goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
