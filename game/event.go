package game

// EventType represents the type of simulation event
type EventType uint8

const (
	// EventHit: ball rebounded off a paddle
	// Side = paddle hit, Pitch = hit sound pitch multiplier
	EventHit EventType = iota

	// EventScore: ball left the field
	// Side = scoring paddle, Score = its new score
	EventScore

	// EventMatchEnd: a paddle reached the winning score, emitted once
	// Side = winner, Score = winning score
	EventMatchEnd
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventHit:
		return "hit"
	case EventScore:
		return "score"
	case EventMatchEnd:
		return "match-end"
	default:
		return "unknown"
	}
}

// Event is emitted by Match.Update; the presentation layer owns any state
// derived from it (sound playback, pitch reset)
type Event struct {
	Type  EventType
	Side  Side
	Pitch float64
	Score int
}
