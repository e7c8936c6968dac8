package game

import "github.com/vovakirdan/tui-flappy/internal/core"

// EventKind classifies platform events.
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventMouseDown
	EventSpawnTimer
)

// Key names carried by EventKeyDown.
const (
	KeySpace  = "space"
	KeyEscape = "esc"
)

// MouseButton identifies the button of an EventMouseDown.
type MouseButton int

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
)

// Event is a platform event collected between two ticks.
type Event struct {
	Kind   EventKind
	Key    string      // EventKeyDown
	Button MouseButton // EventMouseDown
}

// KeyDown returns a key press event.
func KeyDown(key string) Event {
	return Event{Kind: EventKeyDown, Key: key}
}

// MouseDown returns a mouse press event.
func MouseDown(button MouseButton) Event {
	return Event{Kind: EventMouseDown, Button: button}
}

// Dispatch turns the events of one tick into intents. Every space press and
// left click maps to the same flap intent, so any number of them flap once.
// Unrecognized events are ignored.
func Dispatch(events []Event) core.InputFrame {
	frame := core.NewInputFrame()
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			frame.Set(core.ActionQuit)
		case EventKeyDown:
			switch ev.Key {
			case KeySpace:
				frame.Set(core.ActionFlap)
			case KeyEscape:
				frame.Set(core.ActionQuit)
			}
		case EventMouseDown:
			if ev.Button == MouseLeft {
				frame.Set(core.ActionFlap)
			}
		case EventSpawnTimer:
			frame.Set(core.ActionSpawn)
		}
	}
	return frame
}

// SpawnTimer fires every interval ticks. It is polled once per tick.
type SpawnTimer struct {
	interval int
	elapsed  int
}

// NewSpawnTimer creates a timer firing every interval ticks.
func NewSpawnTimer(interval int) *SpawnTimer {
	return &SpawnTimer{interval: max(interval, 1)}
}

// Tick advances the timer and reports whether it fired.
func (t *SpawnTimer) Tick() bool {
	t.elapsed++
	if t.elapsed >= t.interval {
		t.elapsed = 0
		return true
	}
	return false
}
