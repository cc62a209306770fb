package ofpact

import (
	"testing"

	"github.com/fraant/ofpact/field"
	"github.com/fraant/ofpact/port"
	"github.com/stretchr/testify/assert"
)

type fakeCtx struct {
	widths map[field.Id]uint16
}

func (f fakeCtx) HasField(id field.Id) bool { _, ok := f.widths[id]; return ok }
func (f fakeCtx) Width(id field.Id) uint16  { return f.widths[id] }

func TestCheckList_Output(t *testing.T) {
	c := testCodec()

	var list Actlist
	list.append(Entry{Kind: KindOutput, Port: 3})
	list.finish()

	assert.NoError(t, c.CheckList(&list, nil, 8))

	var bad Actlist
	bad.append(Entry{Kind: KindOutput, Port: 100})
	bad.finish()
	assert.ErrorIs(t, c.CheckList(&bad, nil, 8), port.ErrBadPort)
}

func TestCheckList_Enqueue(t *testing.T) {
	c := testCodec()

	var ok1 Actlist
	ok1.append(Entry{Kind: KindEnqueue, Port: port.InPort, QueueID: 1})
	ok1.finish()
	assert.NoError(t, c.CheckList(&ok1, nil, 4))

	var bad Actlist
	bad.append(Entry{Kind: KindEnqueue, Port: 50, QueueID: 1})
	bad.finish()
	assert.ErrorIs(t, c.CheckList(&bad, nil, 4), ErrBadOutPort)
}

func TestCheckList_OutputReg(t *testing.T) {
	c := testCodec()
	ctx := fakeCtx{widths: map[field.Id]uint16{1: 32}}

	var list Actlist
	list.append(Entry{Kind: KindOutputReg, Src: field.Ref{FieldID: 1, Offset: 0, NBits: 16}})
	list.finish()
	assert.NoError(t, c.CheckList(&list, ctx, 8))

	var bad Actlist
	bad.append(Entry{Kind: KindOutputReg, Src: field.Ref{FieldID: 9, Offset: 0, NBits: 16}})
	bad.finish()
	assert.ErrorIs(t, c.CheckList(&bad, ctx, 8), field.ErrBadFieldRef)
}

func TestCheckList_StopsAtFirstError(t *testing.T) {
	c := testCodec()
	var list Actlist
	list.append(Entry{Kind: KindOutput, Port: 100})
	list.append(Entry{Kind: KindOutput, Port: 200})
	list.finish()
	assert.Error(t, c.CheckList(&list, nil, 8))
}
