package ofpact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONRoundTrip(t *testing.T) {
	assert := assert.New(t)
	c := testCodec()

	var list Actlist
	list.append(Entry{Kind: KindOutput, Port: 3, MaxLen: 64})
	list.append(Entry{Kind: KindSetVlanVid, VlanVid: 10})
	list.append(Entry{Kind: KindSetEthSrc, Mac: [6]byte{1, 2, 3, 4, 5, 6}})
	list.append(Entry{Kind: KindSetTunnel, TunID: 0xabcd, CompatHint: CompatNone})
	list.append(Entry{Kind: KindNote, Bytes: []byte{0xaa, 0xbb}})
	list.finish()

	js := c.ToJSON(&list, nil)

	var got Actlist
	assert.NoError(c.FromJSON(js, &got))
	assert.True(c.Equal(&list, &got))
}

func TestJSONUnknownKind(t *testing.T) {
	c := testCodec()
	var list Actlist
	err := c.FromJSON([]byte(`[{"kind":"not_a_real_kind"}]`), &list)
	assert.ErrorIs(t, err, ErrBadType)
}

func TestJSONMissingKind(t *testing.T) {
	c := testCodec()
	var list Actlist
	err := c.FromJSON([]byte(`[{"port":3}]`), &list)
	assert.ErrorIs(t, err, ErrBadType)
}
