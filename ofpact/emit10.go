package ofpact

// EmitV10 appends the wire encoding of every entry in list to dst,
// append-only (spec.md §6, §4.7). Entries with no v1.0 opcode are
// emitted as NX vendor actions.
func (c *Codec) EmitV10(list *Actlist, dst []byte) []byte {
	_ = list.Each(func(e *Entry) error {
		dst = c.emitOneV10(dst, e)
		return nil
	})
	return dst
}

func (c *Codec) emitOneV10(dst []byte, e *Entry) []byte {
	switch e.Kind {
	case KindOutput:
		dst = msb.AppendUint16(dst, v10Output)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint16(dst, e.Port)
		dst = msb.AppendUint16(dst, e.MaxLen)

	case KindSetVlanVid:
		dst = msb.AppendUint16(dst, v10SetVlanVid)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint16(dst, e.VlanVid)
		dst = append(dst, 0, 0)

	case KindSetVlanPcp:
		dst = msb.AppendUint16(dst, v10SetVlanPcp)
		dst = msb.AppendUint16(dst, 8)
		dst = append(dst, e.VlanPcp, 0, 0, 0)

	case KindStripVlan:
		dst = msb.AppendUint16(dst, v10StripVlan)
		dst = msb.AppendUint16(dst, 8)
		dst = append(dst, 0, 0, 0, 0)

	case KindSetEthSrc:
		dst = msb.AppendUint16(dst, v10SetDlSrc)
		dst = msb.AppendUint16(dst, 16)
		dst = append(dst, e.Mac[:]...)
		dst = append(dst, make([]byte, 6)...)

	case KindSetEthDst:
		dst = msb.AppendUint16(dst, v10SetDlDst)
		dst = msb.AppendUint16(dst, 16)
		dst = append(dst, e.Mac[:]...)
		dst = append(dst, make([]byte, 6)...)

	case KindSetIPv4Src:
		dst = msb.AppendUint16(dst, v10SetNwSrc)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint32(dst, e.IPv4)

	case KindSetIPv4Dst:
		dst = msb.AppendUint16(dst, v10SetNwDst)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint32(dst, e.IPv4)

	case KindSetIPv4Dscp:
		dst = msb.AppendUint16(dst, v10SetNwTos)
		dst = msb.AppendUint16(dst, 8)
		dst = append(dst, e.Dscp, 0, 0, 0)

	case KindSetL4SrcPort:
		dst = msb.AppendUint16(dst, v10SetTpSrc)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint16(dst, e.Port)
		dst = append(dst, 0, 0)

	case KindSetL4DstPort:
		dst = msb.AppendUint16(dst, v10SetTpDst)
		dst = msb.AppendUint16(dst, 8)
		dst = msb.AppendUint16(dst, e.Port)
		dst = append(dst, 0, 0)

	case KindEnqueue:
		dst = msb.AppendUint16(dst, v10Enqueue)
		dst = msb.AppendUint16(dst, 16)
		dst = msb.AppendUint16(dst, e.Port)
		dst = append(dst, 0, 0, 0, 0, 0, 0)
		dst = msb.AppendUint32(dst, e.QueueID)

	default:
		dst, _ = c.emitNX(dst, v10VendorEscape, e)
	}
	return dst
}
