package ofpact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScenarios covers spec.md §8's literal end-to-end byte-vector
// scenarios S1-S6.
func TestScenarios(t *testing.T) {
	c := testCodec()

	t.Run("S1_v10_output", func(t *testing.T) {
		assert := assert.New(t)
		in := bytesOf(0x00, 0x00, 0x00, 0x08, 0x00, 0x02, 0x00, 0x00)

		var list Actlist
		assert.NoError(c.ParseActionsV10(in, len(in), &list))
		assert.Len(list.Entries, 2)
		assert.Equal(KindOutput, list.Entries[0].Kind)
		assert.EqualValues(2, list.Entries[0].Port)
		assert.EqualValues(0, list.Entries[0].MaxLen)
		assert.Equal(KindEND, list.Entries[1].Kind)

		out := c.EmitV10(&list, nil)
		assert.Equal(in, out)
	})

	t.Run("S2_bad_vlan_vid", func(t *testing.T) {
		in := bytesOf(0x00, 0x01, 0x00, 0x08, 0x10, 0x00, 0x00, 0x00)
		var list Actlist
		err := c.ParseActionsV10(in, len(in), &list)
		assert.ErrorIs(t, err, ErrBadArgument)
		assert.Empty(t, list.Entries)
	})

	t.Run("S3_nx_note", func(t *testing.T) {
		assert := assert.New(t)
		in := bytesOf(0xff, 0xff, 0x00, 0x10, 0x00, 0x00, 0x23, 0x20,
			0x00, 0x08, 0xaa, 0xbb, 0xcc, 0x00, 0x00, 0x00)

		var list Actlist
		assert.NoError(c.ParseActionsV10(in, len(in), &list))
		assert.Len(list.Entries, 2)
		assert.Equal(KindNote, list.Entries[0].Kind)
		assert.Equal([]byte{0xaa, 0xbb, 0xcc}, list.Entries[0].Bytes)

		text := c.Format(&list, nil)
		assert.Equal("actions=note:aa.bb.cc", string(text))
	})

	t.Run("S4_resubmit_table_bad_pad", func(t *testing.T) {
		// subtype 14 (RESUBMIT_TABLE), in_port=3, table_id=5, pad byte
		// nonzero: ff ff 00 10 00 00 23 20 00 0e 00 03 05 01 00 00
		in := bytesOf(0xff, 0xff, 0x00, 0x10, 0x00, 0x00, 0x23, 0x20,
			0x00, 0x0e, 0x00, 0x03, 0x05, 0x01, 0x00, 0x00)
		var list Actlist
		err := c.ParseActionsV10(in, len(in), &list)
		assert.ErrorIs(t, err, ErrBadArgument)
		assert.Empty(t, list.Entries)
	})

	t.Run("S5_v11_apply_output", func(t *testing.T) {
		assert := assert.New(t)
		action := bytesOf(0x00, 0x00, 0x00, 0x10,
			0x00, 0x00, 0x00, 0x01, // port 1
			0x00, 0x00, // max_len 0
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00) // pad

		inst := append([]byte{}, byte(instApplyActions>>8), byte(instApplyActions))
		instLen := 8 + len(action)
		inst = append(inst, byte(instLen>>8), byte(instLen))
		inst = append(inst, 0, 0, 0, 0) // pad
		inst = append(inst, action...)

		var list Actlist
		assert.NoError(c.ParseInstructionsV11(inst, len(inst), &list))
		assert.Len(list.Entries, 2)
		assert.Equal(KindOutput, list.Entries[0].Kind)
		assert.EqualValues(1, list.Entries[0].Port)
		assert.EqualValues(0, list.Entries[0].MaxLen)
	})

	t.Run("S6_apply_and_goto_table", func(t *testing.T) {
		action := bytesOf(0x00, 0x00, 0x00, 0x10,
			0x00, 0x00, 0x00, 0x01,
			0x00, 0x00,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00)

		apply := append([]byte{}, byte(instApplyActions>>8), byte(instApplyActions))
		applyLen := 8 + len(action)
		apply = append(apply, byte(applyLen>>8), byte(applyLen))
		apply = append(apply, 0, 0, 0, 0)
		apply = append(apply, action...)

		goTo := bytesOf(0x00, 0x01, 0x00, 0x08, 0x05, 0x00, 0x00, 0x00)

		inst := append(append([]byte{}, apply...), goTo...)

		var list Actlist
		err := c.ParseInstructionsV11(inst, len(inst), &list)
		assert.ErrorIs(t, err, ErrUnsupInst)
		assert.Empty(t, list.Entries)
	})
}
