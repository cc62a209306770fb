package subcodec

import (
	"strconv"

	"github.com/fraant/ofpact/field"
)

// Learn carries the NXAST_LEARN payload opaque to this codec (spec.md
// §3). Its flow-mod template language is out of scope (spec.md §1); Raw
// preserves the exact wire bytes for lossless round-trip.
type Learn struct {
	Raw []byte
}

func NewLearn() *Learn { return &Learn{} }

func (l *Learn) FromWire(src []byte) error {
	l.Raw = append([]byte(nil), src...)
	return nil
}

func (l *Learn) ToWire(dst []byte) []byte {
	return append(dst, l.Raw...)
}

func (l *Learn) Check(ctx field.FlowCtx) error {
	return nil
}

func (l *Learn) Format(dst []byte) []byte {
	dst = append(dst, "learn("...)
	dst = strconv.AppendInt(dst, int64(len(l.Raw)), 10)
	dst = append(dst, " bytes)"...)
	return dst
}
