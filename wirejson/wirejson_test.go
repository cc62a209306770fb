package wirejson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexRoundTrip(t *testing.T) {
	assert := assert.New(t)

	src := []byte{0xaa, 0xbb, 0xcc}
	j := Hex(nil, src)
	assert.Equal(`"0xaabbcc"`, string(j))

	got, err := UnHex(j)
	assert.NoError(err)
	assert.Equal(src, got)
}

func TestHexNil(t *testing.T) {
	assert.Equal(t, "null", string(Hex(nil, nil)))
}

func TestU64RoundTrip(t *testing.T) {
	assert := assert.New(t)

	j := U64(nil, 42)
	assert.Equal("42", string(j))

	got, err := UnU64(j)
	assert.NoError(err)
	assert.EqualValues(42, got)
}

func TestObjectEach(t *testing.T) {
	assert := assert.New(t)

	seen := map[string]string{}
	err := ObjectEach([]byte(`{"a":1,"b":"x"}`), func(key string, val []byte, typ Type) error {
		seen[key] = string(val)
		return nil
	})
	assert.NoError(err)
	assert.Equal("1", seen["a"])
	assert.Equal("x", seen["b"])
}
