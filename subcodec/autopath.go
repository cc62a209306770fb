package subcodec

import "github.com/fraant/ofpact/field"

// Autopath implements NXAST_AUTOPATH. Unlike the other sub-codecs,
// spec.md §3 gives its Entry variant concrete fields (port, dst) rather
// than an opaque payload, so this type is a stateless helper bound to a
// field.Registry rather than a payload holder.
//
// Wire body (after the common 10-byte NX header):
//
//	port(4) dst_header(4) ofs_nbits(2) reserved(4)  = 14 bytes
//
// reserved must be zero (spec.md §8 property 5's pattern, generalized
// to this sub-codec's own reserved bytes).
type Autopath struct {
	reg field.Registry
}

func NewAutopath(reg field.Registry) *Autopath {
	return &Autopath{reg: reg}
}

// FromWire parses src into a port and destination FieldRef.
func (a *Autopath) FromWire(src []byte) (port uint32, dst field.Ref, err error) {
	if len(src) < 14 {
		return 0, field.Ref{}, ErrTruncated
	}
	port = msb.Uint32(src[0:4])

	id, err := a.reg.FieldFromNXM(msb.Uint32(src[4:8]))
	if err != nil {
		return 0, field.Ref{}, err
	}
	ofs, nbits := decodeOfsNBits(msb.Uint16(src[8:10]))

	for _, b := range src[10:14] {
		if b != 0 {
			return 0, field.Ref{}, ErrBadArgument
		}
	}

	return port, field.Ref{FieldID: id, Offset: ofs, NBits: nbits}, nil
}

// ToWire appends the wire representation of (port, dst) to dst.
func (a *Autopath) ToWire(out []byte, port uint32, dst field.Ref) []byte {
	out = msb.AppendUint32(out, port)
	out = msb.AppendUint32(out, uint32(dst.FieldID))
	out = msb.AppendUint16(out, encodeOfsNBits(dst.Offset, dst.NBits))
	var zero [4]byte
	return append(out, zero[:]...)
}

// Check validates dst against ctx.
func (a *Autopath) Check(dst field.Ref, ctx field.FlowCtx) error {
	return a.reg.CheckSrc(dst, ctx)
}

// Format appends the canonical textual spelling of (port, dst) to out.
func (a *Autopath) Format(out []byte, port uint32, dst field.Ref) []byte {
	out = append(out, "autopath("...)
	out = appendHex(out, uint64(port))
	out = append(out, ',')
	out = a.reg.FormatSubfield(out, dst)
	return append(out, ')')
}
