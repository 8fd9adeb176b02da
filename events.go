package cubefall

import (
	"github.com/akmonengine/cubefall/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	FELL_OFF_EDGE EventType = iota
	RETURNED_OVER_PLATFORM
	BOUNCE
	RESET
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case FELL_OFF_EDGE:
		return "fell-off-edge"
	case RETURNED_OVER_PLATFORM:
		return "returned-over-platform"
	case BOUNCE:
		return "bounce"
	case RESET:
		return "reset"
	}
	return "unknown"
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// FellOffEdgeEvent is sent when the body leaves the platform's horizontal footprint
type FellOffEdgeEvent struct {
	Body *actor.Body
	Tick uint64
}

func (e FellOffEdgeEvent) Type() EventType { return FELL_OFF_EDGE }

// ReturnedOverPlatformEvent is sent when the body is moved back above the platform
type ReturnedOverPlatformEvent struct {
	Body *actor.Body
	Tick uint64
}

func (e ReturnedOverPlatformEvent) Type() EventType { return RETURNED_OVER_PLATFORM }

// BounceEvent is sent on each ground contact.
// ImpactVelocity is the vertical speed before damping, ReboundVelocity after reflection.
type BounceEvent struct {
	Body            *actor.Body
	Tick            uint64
	ImpactVelocity  float64
	ReboundVelocity float64
}

func (e BounceEvent) Type() EventType { return BOUNCE }

// ResetEvent is sent when the body fell below the threshold and was moved back to the origin
type ResetEvent struct {
	Body         *actor.Body
	Tick         uint64
	LastPosition mgl64.Vec3
}

func (e ResetEvent) Type() EventType { return RESET }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager. The zero value is ready to use.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 8),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// SubscribeAll adds a listener for every event type
func (e *Events) SubscribeAll(listener EventListener) {
	for _, eventType := range []EventType{FELL_OFF_EDGE, RETURNED_OVER_PLATFORM, BOUNCE, RESET} {
		e.Subscribe(eventType, listener)
	}
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events in emission order and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	clear(e.buffer)
	e.buffer = e.buffer[:0]
}
