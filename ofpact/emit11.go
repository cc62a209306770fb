package ofpact

import "github.com/fraant/ofpact/port"

// EmitV11 appends the wire encoding of list to dst as a single
// instruction of kind instType (spec.md §4.7, §6). Only
// instApplyActions is implemented; other instruction kinds have no
// entry payload to wrap and are rejected.
func (c *Codec) EmitV11(list *Actlist, instType uint16, dst []byte) ([]byte, error) {
	if instType != instApplyActions {
		return dst, ErrUnsupInst
	}

	lenOff := len(dst) + 2
	dst = msb.AppendUint16(dst, instApplyActions)
	dst = msb.AppendUint16(dst, 0) // length, back-patched below
	dst = append(dst, 0, 0, 0, 0)  // pad

	_ = list.Each(func(e *Entry) error {
		switch e.Kind {
		case KindEnqueue, KindStripVlan:
			// No v1.1 opcode exists for these (spec.md §4.7, §9 open
			// question 2); they are silently skipped, matching the
			// preserved source behavior.
			return nil
		}
		dst = c.emitOneV11(dst, e)
		return nil
	})

	l := len(dst) - (lenOff - 2)
	msb.PutUint16(dst[lenOff:lenOff+2], uint16(l))
	return dst, nil
}

func (c *Codec) emitOneV11(dst []byte, e *Entry) []byte {
	switch e.Kind {
	case KindOutput:
		dst = msb.AppendUint16(dst, v11Output)
		dst = msb.AppendUint16(dst, 16)
		dst = msb.AppendUint32(dst, port.RemapToV11(e.Port))
		dst = msb.AppendUint16(dst, e.MaxLen)
		dst = append(dst, make([]byte, 6)...)

	case KindSetVlanVid:
		dst = msb.AppendUint16(dst, v11SetVlanVid)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint16(dst, e.VlanVid)
		dst = append(dst, 0, 0)

	case KindSetVlanPcp:
		dst = msb.AppendUint16(dst, v11SetVlanPcp)
		dst = msb.AppendUint16(dst, 8)
		dst = append(dst, e.VlanPcp, 0, 0, 0)

	case KindSetEthSrc:
		dst = msb.AppendUint16(dst, v11SetDlSrc)
		dst = msb.AppendUint16(dst, 16)
		dst = append(dst, e.Mac[:]...)
		dst = append(dst, make([]byte, 6)...)

	case KindSetEthDst:
		dst = msb.AppendUint16(dst, v11SetDlDst)
		dst = msb.AppendUint16(dst, 16)
		dst = append(dst, e.Mac[:]...)
		dst = append(dst, make([]byte, 6)...)

	case KindSetIPv4Src:
		dst = msb.AppendUint16(dst, v11SetNwSrc)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint32(dst, e.IPv4)

	case KindSetIPv4Dst:
		dst = msb.AppendUint16(dst, v11SetNwDst)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint32(dst, e.IPv4)

	case KindSetIPv4Dscp:
		dst = msb.AppendUint16(dst, v11SetNwTos)
		dst = msb.AppendUint16(dst, 8)
		dst = append(dst, e.Dscp, 0, 0, 0)

	case KindSetL4SrcPort:
		dst = msb.AppendUint16(dst, v11SetTpSrc)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint16(dst, e.Port)
		dst = append(dst, 0, 0)

	case KindSetL4DstPort:
		dst = msb.AppendUint16(dst, v11SetTpDst)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint16(dst, e.Port)
		dst = append(dst, 0, 0)

	case KindDecTTL:
		dst = msb.AppendUint16(dst, v11DecTTL)
		dst = msb.AppendUint16(dst, 8)
		dst = append(dst, 0, 0, 0, 0)

	default:
		dst, _ = c.emitNX(dst, v11ExperimenterEscape, e)
	}
	return dst
}
