package ofpact

import "github.com/fraant/ofpact/port"

// ParseActionsV10 decodes actionsLen bytes of v1.0 actions from src into
// into (spec.md §6). On error into is cleared before returning, and the
// byte offset of the failing unit is reported to the diagnostic sink
// (spec.md §7).
func (c *Codec) ParseActionsV10(src []byte, actionsLen int, into *Actlist) error {
	into.Reset()
	if actionsLen < 0 || actionsLen > len(src) {
		return ErrBadLen
	}
	region := src[:actionsLen]

	off := 0
	for off < len(region) {
		var e Entry
		n, err := c.parseOneV10(region[off:], &e)
		if err != nil {
			c.Opts.diag().Warn(off, err, "parse_actions_v10: bad action")
			into.Reset()
			return err
		}
		into.append(e)
		off += n
	}
	into.finish()
	return nil
}

func (c *Codec) parseOneV10(unit []byte, e *Entry) (int, error) {
	h, err := decodeHeader(unit, v10VendorEscape, v10Sizes)
	if err != nil {
		return 0, err
	}
	body := unit[actionBodyOffset:h.Len]

	if h.Type == v10VendorEscape {
		if err := c.parseNX(h, unit, e); err != nil {
			return 0, err
		}
		return h.Len, nil
	}

	switch h.Type {
	case v10Output:
		p := msb.Uint16(body[0:2])
		if p > port.MaxPhys && !port.IsReserved(p) {
			return 0, ErrBadOutPort
		}
		e.Kind = KindOutput
		e.Port = p
		e.MaxLen = msb.Uint16(body[2:4])

	case v10SetVlanVid:
		v := msb.Uint16(body[0:2])
		if v&0xf000 != 0 {
			return 0, ErrBadArgument
		}
		e.Kind = KindSetVlanVid
		e.VlanVid = v

	case v10SetVlanPcp:
		p := body[0]
		if p&^0x07 != 0 {
			return 0, ErrBadArgument
		}
		e.Kind = KindSetVlanPcp
		e.VlanPcp = p

	case v10StripVlan:
		e.Kind = KindStripVlan

	case v10SetDlSrc:
		e.Kind = KindSetEthSrc
		copy(e.Mac[:], body[0:6])

	case v10SetDlDst:
		e.Kind = KindSetEthDst
		copy(e.Mac[:], body[0:6])

	case v10SetNwSrc:
		e.Kind = KindSetIPv4Src
		e.IPv4 = msb.Uint32(body[0:4])

	case v10SetNwDst:
		e.Kind = KindSetIPv4Dst
		e.IPv4 = msb.Uint32(body[0:4])

	case v10SetNwTos:
		d := body[0]
		if d&^dscpMask != 0 {
			return 0, ErrBadArgument
		}
		e.Kind = KindSetIPv4Dscp
		e.Dscp = d

	case v10SetTpSrc:
		e.Kind = KindSetL4SrcPort
		e.Port = msb.Uint16(body[0:2])

	case v10SetTpDst:
		e.Kind = KindSetL4DstPort
		e.Port = msb.Uint16(body[0:2])

	case v10Enqueue:
		p := msb.Uint16(body[0:2])
		if p > port.MaxPhys && !port.IsReserved(p) {
			return 0, ErrBadOutPort
		}
		e.Kind = KindEnqueue
		e.Port = p
		e.QueueID = msb.Uint32(body[8:12])

	default:
		return 0, ErrBadType
	}
	return h.Len, nil
}

// dscpMask masks the DSCP bits of a TOS byte (spec.md §6).
const dscpMask = 0xfc
