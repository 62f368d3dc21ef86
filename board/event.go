package board

import "fmt"

type EventType uint8

const (
	EventNewArrow EventType = iota
	EventNewPosition
	EventEaten
	// EventDiv separates the hops of a capture chain. It carries no data.
	EventDiv
)

// Event is the unit of board mutation. Events are produced by MoveEvents
// and trusted by ProcessEvents.
type Event struct {
	Type  EventType
	Pos   Position
	To    Position
	Arrow Arrow
}

func NewArrowEvent(pos Position, a Arrow) Event {
	return Event{Type: EventNewArrow, Pos: pos, Arrow: a}
}

func NewPositionEvent(from, to Position) Event {
	return Event{Type: EventNewPosition, Pos: from, To: to}
}

func EatenEvent(pos Position) Event {
	return Event{Type: EventEaten, Pos: pos}
}

func DivEvent() Event {
	return Event{Type: EventDiv}
}

func (e Event) String() string {
	switch e.Type {
	case EventNewArrow:
		return fmt.Sprintf("NewArrow(%v, %v)", e.Pos, e.Arrow)
	case EventNewPosition:
		return fmt.Sprintf("NewOctiPosition(%v, %v)", e.Pos, e.To)
	case EventEaten:
		return fmt.Sprintf("OctiEaten(%v)", e.Pos)
	case EventDiv:
		return "Div"
	}
	return "UNHANDLED"
}

// SplitHops splits an event list on Div markers. A trailing Div does not
// produce an empty group.
func SplitHops(events []Event) [][]Event {
	var hops [][]Event
	start := 0
	for i, e := range events {
		if e.Type == EventDiv {
			hops = append(hops, events[start:i])
			start = i + 1
		}
	}
	if start < len(events) {
		hops = append(hops, events[start:])
	}
	return hops
}
