package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCtx struct {
	fields map[Id]uint16
}

func (f fakeCtx) HasField(id Id) bool { _, ok := f.fields[id]; return ok }
func (f fakeCtx) Width(id Id) uint16  { return f.fields[id] }

func TestDefaultRegistry_FieldFromNXM(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	reg := NewDefaultRegistry(func(h uint32) (Id, error) {
		calls++
		if h == 0 {
			return 0, ErrUnknownField
		}
		return Id(h), nil
	}, nil)

	id, err := reg.FieldFromNXM(42)
	assert.NoError(err)
	assert.EqualValues(42, id)

	// second call for the same header must hit the cache
	id, err = reg.FieldFromNXM(42)
	assert.NoError(err)
	assert.EqualValues(42, id)
	assert.Equal(1, calls)

	_, err = reg.FieldFromNXM(0)
	assert.ErrorIs(err, ErrUnknownField)
}

func TestDefaultRegistry_CheckSrc(t *testing.T) {
	assert := assert.New(t)

	reg := NewDefaultRegistry(func(h uint32) (Id, error) { return Id(h), nil }, nil)

	assert.NoError(reg.CheckSrc(Ref{FieldID: 1, Offset: 0, NBits: 8}, nil))
	assert.True(errors.Is(reg.CheckSrc(Ref{FieldID: 1, NBits: 0}, nil), ErrBadFieldRef))

	ctx := fakeCtx{fields: map[Id]uint16{1: 32}}
	assert.NoError(reg.CheckSrc(Ref{FieldID: 1, Offset: 16, NBits: 16}, ctx))
	assert.ErrorIs(reg.CheckSrc(Ref{FieldID: 1, Offset: 16, NBits: 32}, ctx), ErrBadFieldRef)
	assert.ErrorIs(reg.CheckSrc(Ref{FieldID: 2, NBits: 8}, ctx), ErrBadFieldRef)
}

func TestDefaultRegistry_FormatSubfield(t *testing.T) {
	assert := assert.New(t)

	named := NewDefaultRegistry(func(h uint32) (Id, error) { return Id(h), nil }, func(id Id) string {
		if id == 1 {
			return "NXM_OF_IN_PORT"
		}
		return ""
	})

	got := named.FormatSubfield(nil, Ref{FieldID: 1, Offset: 0, NBits: 16})
	assert.Equal("NXM_OF_IN_PORT[0...16]", string(got))

	anon := NewDefaultRegistry(func(h uint32) (Id, error) { return Id(h), nil }, nil)
	got = anon.FormatSubfield(nil, Ref{FieldID: 9, Offset: 0, NBits: 8})
	assert.Equal("field9[0...8]", string(got))
}
