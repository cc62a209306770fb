package diag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSink_Warn(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s := NewSink(log, 1000, 1000)

	s.Warn(8, errors.New("bad length"), "dropping entry")
	assert.Contains(buf.String(), "bad length")
	assert.Contains(buf.String(), `"offset":8`)
}

func TestSink_RateLimited(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s := NewSink(log, 1, 1)

	for i := 0; i < 50; i++ {
		s.Warn(i, errors.New("x"), "spam")
	}

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Less(lines, 50, "rate limiter should have dropped most warnings")
}

func TestSink_NilIsSafe(t *testing.T) {
	var s *Sink
	assert.NotPanics(t, func() {
		s.Warn(0, errors.New("x"), "msg")
	})
}

func TestNop(t *testing.T) {
	s := Nop()
	assert.NotPanics(t, func() {
		s.Warn(0, errors.New("x"), "msg")
	})
}
