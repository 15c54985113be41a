// Package progress is the engine's observer surface: structured events about
// the render, decoupled from any concrete logging framework.
package progress

import "github.com/rs/zerolog"

// Event describes one pipeline milestone. Segment/Total are 1-based and zero
// when the event is not segment-scoped.
type Event struct {
	Stage   string
	Segment int
	Total   int
	Warn    bool
	Message string
}

// Sink receives events. Implementations must be safe for concurrent use;
// the TTS fan-out publishes from multiple goroutines.
type Sink interface {
	Publish(e Event)
}

// Nop discards all events.
type Nop struct{}

func (Nop) Publish(Event) {}

// Log forwards events to a zerolog logger.
type Log struct {
	l zerolog.Logger
}

func NewLog(l zerolog.Logger) Log { return Log{l: l} }

func (s Log) Publish(e Event) {
	ev := s.l.Info()
	if e.Warn {
		ev = s.l.Warn()
	}
	ev = ev.Str("stage", e.Stage)
	if e.Total > 0 {
		ev = ev.Int("segment", e.Segment).Int("of", e.Total)
	}
	ev.Msg(e.Message)
}
