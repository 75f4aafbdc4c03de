package tetris

import "strconv"

// EventKind tags a notification raised by the simulation.
type EventKind uint8

const (
	// EventPieceLocked is raised when the focused piece joins the stack.
	EventPieceLocked EventKind = iota
	// EventRowsCleared is raised once per lock that clears rows; Rows holds the count.
	EventRowsCleared
	// EventHardDrop is raised when the focused piece is snapped to its ghost; Rows holds the distance.
	EventHardDrop
	// EventLevelUp is raised when a clear moves the game to a new level.
	EventLevelUp
	// EventGameOver is raised when a new piece cannot spawn.
	EventGameOver
	// EventRestarted is raised when a finished game is restarted.
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventPieceLocked:
		return "piece-locked"
	case EventRowsCleared:
		return "rows-cleared"
	case EventHardDrop:
		return "hard-drop"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	case EventRestarted:
		return "restarted"
	}
	return "EventKind(" + strconv.Itoa(int(k)) + ")"
}

// Event is a side effect notification for audio and rendering collaborators.
// The simulation never reads its own events.
type Event struct {
	Kind  EventKind
	Shape Shape
	Rows  uint
	Level uint
}

// Listener receives events after the tick that raised them has been fully applied.
type Listener func(Event)

// eventQueue buffers events raised during a tick and delivers them once the
// tick is complete, so listeners never observe a half applied tick.
type eventQueue struct {
	pending   []Event
	listeners []Listener
}

func (q *eventQueue) emit(e Event) {
	q.pending = append(q.pending, e)
}

func (q *eventQueue) subscribe(l Listener) {
	q.listeners = append(q.listeners, l)
}

// flush delivers pending events to every listener and returns them,
// resetting the buffer.
func (q *eventQueue) flush() []Event {
	if len(q.pending) == 0 {
		return nil
	}

	events := make([]Event, len(q.pending))
	copy(events, q.pending)
	q.pending = q.pending[:0]

	for _, e := range events {
		for _, l := range q.listeners {
			l(e)
		}
	}
	return events
}
