// Package diag provides the codec's rate-limited diagnostic sink.
//
// The codec itself never blocks and never retries (spec.md §5, §7): a
// Sink only ever appends a best-effort log line and returns immediately,
// dropping messages once its rate budget is exhausted instead of queueing
// or blocking the caller.
package diag

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Sink is a rate-limited diagnostic warning sink, shared process-wide
// the way the host's own logger is (spec.md §9 "Global logger").
//
// The zero value is usable: it discards everything, the same default
// as a nil *zerolog.Logger would via zerolog.Nop().
type Sink struct {
	log     zerolog.Logger
	limiter *rate.Limiter
}

// DefaultRate is the default sustained warning rate: 20 per second with
// a burst of 40, generous enough to not mask a burst of malformed
// actions while still bounding log volume against a hostile input.
const (
	DefaultRate  = 20
	DefaultBurst = 40
)

// NewSink returns a Sink writing to log, rate-limited to r events/sec
// with the given burst. If log is the zero Logger (no output configured)
// it behaves like zerolog.Nop().
func NewSink(log zerolog.Logger, r float64, burst int) *Sink {
	if r <= 0 {
		r = DefaultRate
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &Sink{
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(r), burst),
	}
}

// Nop returns a Sink that discards everything.
func Nop() *Sink {
	l := zerolog.Nop()
	return NewSink(l, DefaultRate, DefaultBurst)
}

// Warn logs a warning for a byte offset, dropping it silently if the
// sink's rate budget is currently exhausted. Never blocks.
func (s *Sink) Warn(offset int, err error, msg string) {
	if s == nil || s.limiter == nil {
		return
	}
	if !s.limiter.AllowN(time.Now(), 1) {
		return
	}
	s.log.Warn().Int("offset", offset).Err(err).Msg(msg)
}

// Warnf is like Warn but takes a zerolog event builder callback instead
// of an error, for call sites that want to attach extra fields (e.g.
// opcode, subtype).
func (s *Sink) Warnf(offset int, build func(ev *zerolog.Event) *zerolog.Event, msg string) {
	if s == nil || s.limiter == nil {
		return
	}
	if !s.limiter.AllowN(time.Now(), 1) {
		return
	}
	ev := s.log.Warn().Int("offset", offset)
	if build != nil {
		ev = build(ev)
	}
	ev.Msg(msg)
}
