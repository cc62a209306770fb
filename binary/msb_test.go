package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlign8(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1, 8},
		{7, 8},
		{8, 8},
		{9, 16},
		{16, 16},
	}

	for _, tt := range tests {
		assert.Equal(tt.want, Align8(tt.in), "Align8(%d)", tt.in)
	}
}

func TestPad8(t *testing.T) {
	assert := assert.New(t)

	got := Pad8([]byte{1, 2, 3})
	assert.Equal([]byte{1, 2, 3, 0, 0, 0, 0, 0}, got)

	for _, z := range got[3:] {
		assert.EqualValues(0, z)
	}

	got = Pad8([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	assert.Equal([]byte{1, 2, 3, 4, 5, 6, 7, 8}, got)
}
