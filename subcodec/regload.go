package subcodec

import "github.com/fraant/ofpact/field"

// RegLoad implements NXAST_REG_LOAD: write an immediate Value into
// n_bits of Dst starting at Ofs. Wire body (after the common 10-byte NX
// header):
//
//	ofs_nbits(2) dst_header(4) value(8)  = 14 bytes
//
// ofs_nbits packs (offset<<6)|(n_bits-1), the same bit layout NXM uses
// for nxm_reg_load's ofs_nbits field.
type RegLoad struct {
	reg field.Registry

	Dst   field.Id
	Ofs   uint16
	NBits uint16
	Value uint64
}

// NewRegLoad returns an empty RegLoad bound to reg for NXM header resolution.
func NewRegLoad(reg field.Registry) *RegLoad {
	return &RegLoad{reg: reg}
}

func encodeOfsNBits(ofs, nbits uint16) uint16 {
	return ofs<<6 | (nbits - 1)
}

func decodeOfsNBits(v uint16) (ofs, nbits uint16) {
	return v >> 6, (v & 0x3f) + 1
}

func (l *RegLoad) FromWire(src []byte) error {
	if len(src) < 14 {
		return ErrTruncated
	}
	ofsNBits := msb.Uint16(src[0:2])
	l.Ofs, l.NBits = decodeOfsNBits(ofsNBits)

	id, err := l.reg.FieldFromNXM(msb.Uint32(src[2:6]))
	if err != nil {
		return err
	}
	l.Dst = id
	l.Value = msb.Uint64(src[6:14])
	return nil
}

func (l *RegLoad) ToWire(dst []byte) []byte {
	dst = msb.AppendUint16(dst, encodeOfsNBits(l.Ofs, l.NBits))
	dst = msb.AppendUint32(dst, uint32(l.Dst))
	dst = msb.AppendUint64(dst, l.Value)
	return dst
}

func (l *RegLoad) Check(ctx field.FlowCtx) error {
	return l.reg.CheckSrc(field.Ref{FieldID: l.Dst, Offset: l.Ofs, NBits: l.NBits}, ctx)
}

func (l *RegLoad) Format(dst []byte) []byte {
	dst = append(dst, "load:0x"...)
	dst = appendHex(dst, l.Value)
	dst = append(dst, "->"...)
	return l.reg.FormatSubfield(dst, field.Ref{FieldID: l.Dst, Offset: l.Ofs, NBits: l.NBits})
}
