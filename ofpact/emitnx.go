package ofpact

import (
	"github.com/fraant/ofpact/binary"
	"github.com/fraant/ofpact/subcodec"
)

// emitNX appends e's NX vendor-subtype wire encoding to dst, with
// outerType as the dialect's vendor-escape opcode (spec.md §4.7 "NX
// emitter"). note uses the two-phase variable-length write of spec.md
// §4.7/§9: reserve header, append payload, pad, back-patch length.
func (c *Codec) emitNX(dst []byte, outerType uint16, e *Entry) ([]byte, error) {
	start := len(dst)
	lenOff := start + 2

	dst = msb.AppendUint16(dst, outerType)
	dst = msb.AppendUint16(dst, 0) // length, back-patched below
	dst = msb.AppendUint32(dst, NXVendorID)

	switch e.Kind {
	case KindResubmit:
		sub := subNxResubmit
		if e.TableID != 0xff || e.CompatHint == CompatNxResubmitTable {
			sub = subNxResubmitTable
		}
		dst = msb.AppendUint16(dst, sub)
		dst = msb.AppendUint16(dst, e.InPort)
		dst = append(dst, e.TableID, 0, 0, 0)

	case KindSetTunnel:
		if e.TunID <= 0xffffffff && e.CompatHint != CompatNxSetTunnel64 {
			dst = msb.AppendUint16(dst, subNxSetTunnel)
			dst = append(dst, 0, 0)
			dst = msb.AppendUint32(dst, uint32(e.TunID))
		} else {
			dst = msb.AppendUint16(dst, subNxSetTunnel64)
			dst = append(dst, make([]byte, 6)...)
			dst = msb.AppendUint64(dst, e.TunID)
		}

	case KindSetQueue:
		dst = msb.AppendUint16(dst, subNxSetQueue)
		dst = append(dst, 0, 0)
		dst = msb.AppendUint32(dst, e.QueueID)

	case KindPopQueue:
		dst = msb.AppendUint16(dst, subNxPopQueue)
		dst = append(dst, make([]byte, 6)...)

	case KindRegMove:
		dst = msb.AppendUint16(dst, subNxRegMove)
		dst = e.RegMove.ToWire(dst)

	case KindRegLoad:
		dst = msb.AppendUint16(dst, subNxRegLoad)
		dst = e.RegLoad.ToWire(dst)

	case KindNote:
		dst = msb.AppendUint16(dst, subNxNote)
		dst = append(dst, e.Bytes...)

	case KindMultipath:
		dst = msb.AppendUint16(dst, subNxMultipath)
		dst = e.Multipath.ToWire(dst)

	case KindAutopath:
		dst = msb.AppendUint16(dst, subNxAutopath)
		a := subcodec.NewAutopath(c.Opts.fields())
		dst = a.ToWire(dst, e.AutopathPort, e.Src)

	case KindBundle:
		dst = msb.AppendUint16(dst, subNxBundle)
		dst = e.Bundle.ToWire(dst)

	case KindOutputReg:
		dst = msb.AppendUint16(dst, subNxOutputReg)
		ofsNBits := e.Src.Offset<<6 | (e.Src.NBits - 1)
		dst = msb.AppendUint16(dst, ofsNBits)
		dst = msb.AppendUint32(dst, uint32(e.Src.FieldID))
		dst = msb.AppendUint16(dst, e.MaxLen)
		dst = append(dst, make([]byte, 6)...) // zero[6]

	case KindLearn:
		dst = msb.AppendUint16(dst, subNxLearn)
		dst = e.Learn.ToWire(dst)

	case KindExit:
		dst = msb.AppendUint16(dst, subNxExit)

	case KindFinTimeout:
		dst = msb.AppendUint16(dst, subNxFinTimeout)
		dst = msb.AppendUint16(dst, e.IdleTimeout)
		dst = msb.AppendUint16(dst, e.HardTimeout)
		dst = append(dst, 0, 0)

	case KindDecTTL:
		dst = msb.AppendUint16(dst, subNxDecTTL)

	case KindController:
		dst = msb.AppendUint16(dst, subNxController)
		dst = msb.AppendUint16(dst, e.MaxLen)
		dst = msb.AppendUint16(dst, e.ControllerID)
		dst = append(dst, e.Reason, 0)

	default:
		return dst[:start], ErrBadType
	}

	dst = binary.Pad8(dst)
	l := len(dst) - start
	msb.PutUint16(dst[lenOff:lenOff+2], uint16(l))
	return dst, nil
}
