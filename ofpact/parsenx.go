package ofpact

import "github.com/fraant/ofpact/subcodec"

// parseNX decodes the NX vendor-subtype body at unit[nxHeaderSize:h.Len]
// into e, and is reachable from both the v1.0 and v1.1 parsers (spec.md
// §2 "NX-vendor decode is reachable from both v1.0 and v1.1 parsers").
func (c *Codec) parseNX(h actionHeader, unit []byte, e *Entry) error {
	body := unit[nxHeaderSize:h.Len]
	reg := c.Opts.fields()

	switch h.Sub {
	case subNxRegMove, subNxRegLoad, subNxAutopath, subNxOutputReg:
		if reg == nil {
			return ErrBadArgument
		}
	}

	switch h.Sub {
	case subNxResubmit:
		if len(body) < 6 {
			return ErrBadLen
		}
		e.Kind = KindResubmit
		e.InPort = msb.Uint16(body[0:2])
		e.TableID = 0xff
		e.CompatHint = CompatNxResubmit

	case subNxResubmitTable:
		if len(body) < 6 {
			return ErrBadLen
		}
		e.Kind = KindResubmit
		e.InPort = msb.Uint16(body[0:2])
		e.TableID = body[2]
		for _, b := range body[3:6] {
			if b != 0 {
				return ErrBadArgument
			}
		}
		e.CompatHint = CompatNxResubmitTable

	case subNxSetTunnel:
		if len(body) < 6 {
			return ErrBadLen
		}
		e.Kind = KindSetTunnel
		e.TunID = uint64(msb.Uint32(body[2:6]))
		e.CompatHint = CompatNxSetTunnel

	case subNxSetTunnel64:
		if len(body) < 14 {
			return ErrBadLen
		}
		e.Kind = KindSetTunnel
		e.TunID = msb.Uint64(body[6:14])
		e.CompatHint = CompatNxSetTunnel64

	case subNxSetQueue:
		if len(body) < 6 {
			return ErrBadLen
		}
		e.Kind = KindSetQueue
		e.QueueID = msb.Uint32(body[2:6])

	case subNxPopQueue:
		e.Kind = KindPopQueue

	case subNxRegMove:
		m := subcodec.NewRegMove(reg)
		if err := m.FromWire(body); err != nil {
			return err
		}
		e.Kind = KindRegMove
		e.RegMove = m

	case subNxRegLoad:
		l := subcodec.NewRegLoad(reg)
		if err := l.FromWire(body); err != nil {
			return err
		}
		e.Kind = KindRegLoad
		e.RegLoad = l

	case subNxNote:
		// The declared length only bounds the note to its 8-byte-aligned
		// unit; it doesn't separately record the pre-padding byte count.
		// Trailing zero bytes are the alignment padding added on emit
		// (spec.md §3 invariant 3) and are stripped here to recover it.
		end := len(body)
		for end > 0 && body[end-1] == 0 {
			end--
		}
		e.Kind = KindNote
		e.Bytes = append([]byte(nil), body[:end]...)

	case subNxMultipath:
		mp := subcodec.NewMultipath()
		if err := mp.FromWire(body); err != nil {
			return err
		}
		e.Kind = KindMultipath
		e.Multipath = mp

	case subNxAutopath:
		a := subcodec.NewAutopath(reg)
		port, dst, err := a.FromWire(body)
		if err != nil {
			return err
		}
		e.Kind = KindAutopath
		e.AutopathPort = port
		e.Src = dst

	case subNxBundle, subNxBundleLoad:
		b := subcodec.NewBundle()
		if err := b.FromWire(body); err != nil {
			return err
		}
		e.Kind = KindBundle
		e.Bundle = b

	case subNxOutputReg:
		// nx_action_output_reg: ofs_nbits(2) src(4) max_len(2) zero[6].
		if len(body) < 14 {
			return ErrBadLen
		}
		ofsNBits := msb.Uint16(body[0:2])
		ofs, nbits := ofsNBits>>6, (ofsNBits&0x3f)+1
		id, err := reg.FieldFromNXM(msb.Uint32(body[2:6]))
		if err != nil {
			return err
		}
		maxLen := msb.Uint16(body[6:8])
		for _, b := range body[8:14] {
			if b != 0 {
				return ErrBadArgument
			}
		}
		e.Kind = KindOutputReg
		e.Src.FieldID = id
		e.Src.Offset = ofs
		e.Src.NBits = nbits
		e.MaxLen = maxLen

	case subNxLearn:
		l := subcodec.NewLearn()
		if err := l.FromWire(body); err != nil {
			return err
		}
		e.Kind = KindLearn
		e.Learn = l

	case subNxExit:
		e.Kind = KindExit

	case subNxFinTimeout:
		if len(body) < 4 {
			return ErrBadLen
		}
		e.Kind = KindFinTimeout
		e.IdleTimeout = msb.Uint16(body[0:2])
		e.HardTimeout = msb.Uint16(body[2:4])

	case subNxDecTTL:
		e.Kind = KindDecTTL

	case subNxController:
		if len(body) < 6 {
			return ErrBadLen
		}
		e.Kind = KindController
		e.MaxLen = msb.Uint16(body[0:2])
		e.ControllerID = msb.Uint16(body[2:4])
		e.Reason = body[4]

	default:
		return ErrBadType
	}
	return nil
}
