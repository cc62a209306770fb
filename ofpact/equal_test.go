package ofpact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	c := testCodec()

	var a Actlist
	a.append(Entry{Kind: KindOutput, Port: 3, MaxLen: 10})
	a.finish()

	var b Actlist
	b.append(Entry{Kind: KindOutput, Port: 3, MaxLen: 10})
	b.finish()

	assert.True(t, c.Equal(&a, &b))

	var different Actlist
	different.append(Entry{Kind: KindOutput, Port: 4, MaxLen: 10})
	different.finish()
	assert.False(t, c.Equal(&a, &different))

	var shorter Actlist
	shorter.finish()
	assert.False(t, c.Equal(&a, &shorter))
}
