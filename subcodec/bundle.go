package subcodec

import (
	"strconv"

	"github.com/fraant/ofpact/field"
)

// Bundle carries the NXAST_BUNDLE / NXAST_BUNDLE_LOAD payload opaque to
// this codec (spec.md §3: "payload owned by the bundle sub-codec").
// Its algorithm selection, slave list and liveness semantics are out of
// scope (spec.md §1); Raw preserves the exact wire bytes for lossless
// round-trip.
type Bundle struct {
	Raw []byte
}

func NewBundle() *Bundle { return &Bundle{} }

func (b *Bundle) FromWire(src []byte) error {
	b.Raw = append([]byte(nil), src...)
	return nil
}

func (b *Bundle) ToWire(dst []byte) []byte {
	return append(dst, b.Raw...)
}

func (b *Bundle) Check(ctx field.FlowCtx) error {
	return nil
}

func (b *Bundle) Format(dst []byte) []byte {
	dst = append(dst, "bundle("...)
	dst = strconv.AppendInt(dst, int64(len(b.Raw)), 10)
	dst = append(dst, " bytes)"...)
	return dst
}
