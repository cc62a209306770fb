// Package subcodec implements the narrow vendor-extension sub-codecs
// spec.md §1 and §6 name as external collaborators of the core action
// codec: reg_move, reg_load, bundle, multipath, autopath and learn.
//
// reg_move, reg_load, bundle, multipath and learn each own the payload
// of their matching Entry variant (spec.md §3: "payload owned by the
// bundle sub-codec", generalized to the rest of this family) and
// implement Codec, the four operations the core codec needs from them,
// mirroring how the teacher's msg.Attr interface
// (Unmarshal/Marshal/ToJSON/FromJSON) is implemented once per BGP
// attribute kind in package attrs. Autopath does not implement Codec:
// its Entry variant carries concrete fields, so it is a stateless helper
// whose methods take and return those fields.
package subcodec

import (
	"errors"
	"strconv"

	"github.com/fraant/ofpact/field"
)

// ErrTruncated is returned when a sub-codec's fixed-size wire layout
// doesn't fit within the declared action length.
var ErrTruncated = errors.New("truncated vendor payload")

// ErrBadArgument is returned when a sub-codec's own reserved/pad bytes
// are nonzero, or a field value is out of its allowed range.
var ErrBadArgument = errors.New("invalid vendor argument")

// Codec is the shape every sub-codec in this package implements.
type Codec interface {
	// FromWire parses src (the action body after the common NX header)
	// into the codec's internal representation.
	FromWire(src []byte) error

	// ToWire appends the wire representation of the codec's payload
	// (not including the common NX header) to dst.
	ToWire(dst []byte) []byte

	// Check validates the codec's payload against ctx.
	Check(ctx field.FlowCtx) error

	// Format appends the canonical textual spelling of the payload to dst.
	Format(dst []byte) []byte
}

func appendHex(dst []byte, v uint64) []byte {
	return strconv.AppendUint(dst, v, 16)
}
