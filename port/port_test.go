package port

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemapFromV11(t *testing.T) {
	assert := assert.New(t)

	got, err := RemapFromV11(v11InPort)
	assert.NoError(err)
	assert.Equal(InPort, got)

	got, err = RemapFromV11(v11Controller)
	assert.NoError(err)
	assert.Equal(Controller, got)

	got, err = RemapFromV11(1)
	assert.NoError(err)
	assert.EqualValues(1, got)

	_, err = RemapFromV11(0x1_0000)
	assert.ErrorIs(err, ErrBadPort)
}

func TestRemapToV11(t *testing.T) {
	assert := assert.New(t)

	assert.EqualValues(v11Local, RemapToV11(Local))
	assert.EqualValues(42, RemapToV11(42))
}

func TestRemapRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, p := range []uint16{InPort, Table, Normal, Flood, All, Controller, Local, None, 1, 42, MaxPhys} {
		wide := RemapToV11(p)
		back, err := RemapFromV11(wide)
		assert.NoError(err)
		assert.Equal(p, back, "port %d", p)
	}
}

func TestCheckOutput(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(CheckOutput(3, 8))
	assert.NoError(CheckOutput(InPort, 8))
	assert.NoError(CheckOutput(Local, 8))
	assert.ErrorIs(CheckOutput(100, 8), ErrBadPort)
	assert.ErrorIs(CheckOutput(None, 8), ErrBadPort)
}

func TestFormatPort(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("IN_PORT", string(FormatPort(nil, InPort)))
	assert.Equal("3", string(FormatPort(nil, 3)))
}
