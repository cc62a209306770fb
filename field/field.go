// Package field implements the FieldRef value (spec.md §3) and the
// field-registry external collaborator (spec.md §6): translating an
// NXM field header into a FieldId, and checking/formatting a field
// reference against a packet-classifier context.
//
// The actual match-field catalog (NXM_OF_*, NXM_NX_*, their bit widths
// and maskability) lives entirely outside this codec's scope (spec.md
// §1): Registry is the narrow interface the rest of this module needs
// from it, and DefaultRegistry is a thread-safe cache in front of a
// caller-supplied lookup function.
package field

import (
	"errors"
	"strconv"

	"github.com/puzpuzpuz/xsync/v3"
)

// ErrUnknownField is returned by a Registry when an NXM header names
// no known match field.
var ErrUnknownField = errors.New("unknown field")

// ErrBadFieldRef is returned by CheckSrc when a FieldRef's offset/width
// doesn't fit the named field, or the field can't be read in flow_ctx.
var ErrBadFieldRef = errors.New("invalid field reference")

// Id identifies a match field in the surrounding flow model.
type Id uint32

// Ref refers to a slice of bits within a named match field
// ({ field_id, offset, n_bits }, spec.md §3 FieldRef).
type Ref struct {
	FieldID Id
	Offset  uint16
	NBits   uint16
}

// FlowCtx is the packet-classifier context a FieldRef is checked
// against (spec.md §4.6, §6); this codec treats it as an opaque
// external collaborator.
type FlowCtx interface {
	// HasField reports whether id is defined/readable in this context.
	HasField(id Id) bool

	// Width returns the bit width of id, or 0 if id is not defined.
	Width(id Id) uint16
}

// Registry is the external "field registry" collaborator of spec.md §6.
type Registry interface {
	// FieldFromNXM maps a raw NXM field header to its Id.
	FieldFromNXM(header uint32) (Id, error)

	// CheckSrc validates ref as a readable source field, optionally
	// against ctx (nil means "no context available, skip width checks").
	CheckSrc(ref Ref, ctx FlowCtx) error

	// FormatSubfield appends the canonical textual spelling of ref to dst.
	FormatSubfield(dst []byte, ref Ref) []byte
}

// NameFunc returns the canonical name of a field id, or "" if unknown.
type NameFunc func(id Id) string

// DefaultRegistry is a Registry backed by a caller-supplied NXM header
// decoder, with a thread-safe cache of decoded headers in front of it
// (mirroring caps.Caps's use of xsync.MapOf to memoize per-code lookups).
type DefaultRegistry struct {
	decode func(header uint32) (Id, error)
	name   NameFunc
	cache  *xsync.MapOf[uint32, Id]
}

// NewDefaultRegistry returns a Registry that calls decode to resolve an
// NXM header the first time it's seen, then serves it from a thread-safe
// cache on subsequent calls. name is used for formatting; if nil, fields
// are formatted as a bare numeric id.
func NewDefaultRegistry(decode func(header uint32) (Id, error), name NameFunc) *DefaultRegistry {
	return &DefaultRegistry{
		decode: decode,
		name:   name,
		cache:  xsync.NewMapOf[uint32, Id](),
	}
}

// FieldFromNXM implements Registry.
func (r *DefaultRegistry) FieldFromNXM(header uint32) (Id, error) {
	if id, ok := r.cache.Load(header); ok {
		return id, nil
	}
	id, err := r.decode(header)
	if err != nil {
		return 0, err
	}
	r.cache.Store(header, id)
	return id, nil
}

// CheckSrc implements Registry.
func (r *DefaultRegistry) CheckSrc(ref Ref, ctx FlowCtx) error {
	if ref.NBits == 0 {
		return ErrBadFieldRef
	}
	if ctx == nil {
		return nil
	}
	if !ctx.HasField(ref.FieldID) {
		return ErrBadFieldRef
	}
	if w := ctx.Width(ref.FieldID); w > 0 && uint32(ref.Offset)+uint32(ref.NBits) > uint32(w) {
		return ErrBadFieldRef
	}
	return nil
}

// FormatSubfield implements Registry.
func (r *DefaultRegistry) FormatSubfield(dst []byte, ref Ref) []byte {
	if r.name != nil {
		if n := r.name(ref.FieldID); n != "" {
			dst = append(dst, n...)
			return appendBrackets(dst, ref)
		}
	}
	dst = append(dst, "field"...)
	dst = strconv.AppendUint(dst, uint64(ref.FieldID), 10)
	return appendBrackets(dst, ref)
}

func appendBrackets(dst []byte, ref Ref) []byte {
	dst = append(dst, '[')
	dst = strconv.AppendUint(dst, uint64(ref.Offset), 10)
	dst = append(dst, "..."...)
	dst = strconv.AppendUint(dst, uint64(ref.Offset)+uint64(ref.NBits), 10)
	return append(dst, ']')
}
