package subcodec

import (
	"github.com/fraant/ofpact/binary"
	"github.com/fraant/ofpact/field"
)

var msb = binary.Msb

// RegMove implements NXAST_REG_MOVE: copy n_bits from src[src_ofs:] to
// dst[dst_ofs:]. Wire body (after the common 10-byte NX header):
//
//	n_bits(2) src_ofs(2) dst_ofs(2) src_header(4) dst_header(4)  = 14 bytes
type RegMove struct {
	reg field.Registry

	Src    field.Id
	Dst    field.Id
	NBits  uint16
	SrcOfs uint16
	DstOfs uint16
}

// NewRegMove returns an empty RegMove bound to reg for NXM header resolution.
func NewRegMove(reg field.Registry) *RegMove {
	return &RegMove{reg: reg}
}

func (m *RegMove) FromWire(src []byte) error {
	if len(src) < 14 {
		return ErrTruncated
	}
	m.NBits = msb.Uint16(src[0:2])
	m.SrcOfs = msb.Uint16(src[2:4])
	m.DstOfs = msb.Uint16(src[4:6])

	srcID, err := m.reg.FieldFromNXM(msb.Uint32(src[6:10]))
	if err != nil {
		return err
	}
	dstID, err := m.reg.FieldFromNXM(msb.Uint32(src[10:14]))
	if err != nil {
		return err
	}
	m.Src, m.Dst = srcID, dstID
	return nil
}

func (m *RegMove) ToWire(dst []byte) []byte {
	dst = msb.AppendUint16(dst, m.NBits)
	dst = msb.AppendUint16(dst, m.SrcOfs)
	dst = msb.AppendUint16(dst, m.DstOfs)
	dst = msb.AppendUint32(dst, uint32(m.Src))
	dst = msb.AppendUint32(dst, uint32(m.Dst))
	return dst
}

func (m *RegMove) Check(ctx field.FlowCtx) error {
	src := field.Ref{FieldID: m.Src, Offset: m.SrcOfs, NBits: m.NBits}
	dst := field.Ref{FieldID: m.Dst, Offset: m.DstOfs, NBits: m.NBits}
	if err := m.reg.CheckSrc(src, ctx); err != nil {
		return err
	}
	return m.reg.CheckSrc(dst, ctx)
}

func (m *RegMove) Format(dst []byte) []byte {
	dst = append(dst, "move:"...)
	dst = m.reg.FormatSubfield(dst, field.Ref{FieldID: m.Src, Offset: m.SrcOfs, NBits: m.NBits})
	dst = append(dst, "->"...)
	dst = m.reg.FormatSubfield(dst, field.Ref{FieldID: m.Dst, Offset: m.DstOfs, NBits: m.NBits})
	return dst
}
