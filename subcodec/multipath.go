package subcodec

import (
	"strconv"

	"github.com/fraant/ofpact/field"
)

// Multipath carries the NXAST_MULTIPATH payload opaque to this codec
// (spec.md §3). Its hash-link algorithm selection is out of scope
// (spec.md §1); Raw preserves the exact wire bytes for lossless round-trip.
type Multipath struct {
	Raw []byte
}

func NewMultipath() *Multipath { return &Multipath{} }

func (m *Multipath) FromWire(src []byte) error {
	m.Raw = append([]byte(nil), src...)
	return nil
}

func (m *Multipath) ToWire(dst []byte) []byte {
	return append(dst, m.Raw...)
}

func (m *Multipath) Check(ctx field.FlowCtx) error {
	return nil
}

func (m *Multipath) Format(dst []byte) []byte {
	dst = append(dst, "multipath("...)
	dst = strconv.AppendInt(dst, int64(len(m.Raw)), 10)
	dst = append(dst, " bytes)"...)
	return dst
}
