package ofpact

import (
	"github.com/fraant/ofpact/binary"
	"github.com/fraant/ofpact/port"
)

// ParseInstructionsV11 decodes instructionsLen bytes of v1.1
// instructions from src into into (spec.md §4.4, §6). On error into is
// cleared before returning.
func (c *Codec) ParseInstructionsV11(src []byte, instructionsLen int, into *Actlist) error {
	into.Reset()
	if instructionsLen < 0 || instructionsLen > len(src) {
		return ErrBadLen
	}
	if instructionsLen%binary.Unit != 0 {
		return ErrBadRequestLen
	}
	region := src[:instructionsLen]

	var applyActions []byte
	haveApply := false
	seen := map[uint16]bool{}
	otherPresent := false

	off := 0
	for off < len(region) {
		unit := region[off:]
		if len(unit) < actionHeaderSize {
			c.Opts.diag().Warn(off, ErrBadLen, "parse_instructions_v11: truncated instruction")
			return ErrBadLen
		}
		l := int(msb.Uint16(unit[2:4]))
		if l == 0 || l%binary.Unit != 0 || l < actionHeaderSize || l > len(unit) {
			c.Opts.diag().Warn(off, ErrBadLen, "parse_instructions_v11: bad instruction length")
			return ErrBadLen
		}
		kind := msb.Uint16(unit[0:2])

		switch kind {
		case instGotoTable, instWriteMetadata, instWriteActions, instClearActions:
			if seen[kind] {
				c.Opts.diag().Warn(off, ErrDupType, "parse_instructions_v11: duplicate instruction")
				return ErrDupType
			}
			seen[kind] = true
			otherPresent = true

		case instApplyActions:
			if haveApply {
				c.Opts.diag().Warn(off, ErrDupType, "parse_instructions_v11: duplicate APPLY_ACTIONS")
				return ErrDupType
			}
			haveApply = true
			applyActions = unit[actionHeaderSize:l] // type(2) len(2) pad(4) then action bytes

		case instExperimenter:
			c.Opts.diag().Warn(off, ErrBadExperimenter, "parse_instructions_v11: experimenter instruction")
			return ErrBadExperimenter

		default:
			c.Opts.diag().Warn(off, ErrUnknownInst, "parse_instructions_v11: unknown instruction")
			return ErrUnknownInst
		}

		off += l
	}

	if haveApply {
		off := 0
		for off < len(applyActions) {
			var e Entry
			n, err := c.parseOneV11(applyActions[off:], &e)
			if err != nil {
				c.Opts.diag().Warn(off, err, "parse_instructions_v11: bad apply_actions entry")
				into.Reset()
				return err
			}
			into.append(e)
			off += n
		}
	}

	if otherPresent {
		into.Reset()
		return ErrUnsupInst
	}

	into.finish()
	return nil
}

func (c *Codec) parseOneV11(unit []byte, e *Entry) (int, error) {
	h, err := decodeHeader(unit, v11ExperimenterEscape, v11Sizes)
	if err != nil {
		return 0, err
	}
	body := unit[actionBodyOffset:h.Len]

	if h.Type == v11ExperimenterEscape {
		if err := c.parseNX(h, unit, e); err != nil {
			return 0, err
		}
		return h.Len, nil
	}

	switch h.Type {
	case v11Output:
		p32 := msb.Uint32(body[0:4])
		p, err := port.RemapFromV11(p32)
		if err != nil {
			return 0, ErrBadOutPort
		}
		e.Kind = KindOutput
		e.Port = p
		e.MaxLen = msb.Uint16(body[4:6])

	case v11SetVlanVid:
		v := msb.Uint16(body[0:2])
		if v&0xf000 != 0 {
			return 0, ErrBadArgument
		}
		e.Kind = KindSetVlanVid
		e.VlanVid = v

	case v11SetVlanPcp:
		p := body[0]
		if p&^0x07 != 0 {
			return 0, ErrBadArgument
		}
		e.Kind = KindSetVlanPcp
		e.VlanPcp = p

	case v11SetDlSrc:
		e.Kind = KindSetEthSrc
		copy(e.Mac[:], body[0:6])

	case v11SetDlDst:
		e.Kind = KindSetEthDst
		copy(e.Mac[:], body[0:6])

	case v11SetNwSrc:
		e.Kind = KindSetIPv4Src
		e.IPv4 = msb.Uint32(body[0:4])

	case v11SetNwDst:
		e.Kind = KindSetIPv4Dst
		e.IPv4 = msb.Uint32(body[0:4])

	case v11SetNwTos:
		d := body[0]
		if d&^dscpMask != 0 {
			return 0, ErrBadArgument
		}
		e.Kind = KindSetIPv4Dscp
		e.Dscp = d

	case v11SetTpSrc:
		e.Kind = KindSetL4SrcPort
		e.Port = msb.Uint16(body[0:2])

	case v11SetTpDst:
		e.Kind = KindSetL4DstPort
		e.Port = msb.Uint16(body[0:2])

	case v11DecTTL:
		e.Kind = KindDecTTL

	default:
		return 0, ErrBadType
	}
	return h.Len, nil
}
