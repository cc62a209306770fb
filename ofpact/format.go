package ofpact

import (
	"strconv"

	"github.com/fraant/ofpact/field"
	"github.com/fraant/ofpact/port"
)

// reasonAction is the controller reason value formatted as the bare
// "CONTROLLER:<max_len>" spelling (spec.md §4.8), matching OFPR_ACTION.
const reasonAction uint8 = 1

// Format appends the canonical single-line textual rendering of list to
// dst (spec.md §4.8). An empty actlist renders as "actions=drop".
func (c *Codec) Format(list *Actlist, dst []byte) []byte {
	dst = append(dst, "actions="...)
	if list.IsEmpty() {
		return append(dst, "drop"...)
	}

	first := true
	_ = list.Each(func(e *Entry) error {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = c.formatOne(dst, e)
		return nil
	})
	return dst
}

func (c *Codec) formatOne(dst []byte, e *Entry) []byte {
	switch e.Kind {
	case KindOutput:
		dst = append(dst, "output:"...)
		return port.FormatPort(dst, e.Port)

	case KindController:
		if e.Reason == reasonAction && e.ControllerID == 0 {
			dst = append(dst, "CONTROLLER:"...)
			return strconv.AppendUint(dst, uint64(e.MaxLen), 10)
		}
		dst = append(dst, "controller(reason="...)
		dst = strconv.AppendUint(dst, uint64(e.Reason), 10)
		dst = append(dst, ",max_len="...)
		dst = strconv.AppendUint(dst, uint64(e.MaxLen), 10)
		dst = append(dst, ",id="...)
		dst = strconv.AppendUint(dst, uint64(e.ControllerID), 10)
		return append(dst, ')')

	case KindEnqueue:
		dst = append(dst, "enqueue:"...)
		dst = port.FormatPort(dst, e.Port)
		dst = append(dst, 'q')
		return strconv.AppendUint(dst, uint64(e.QueueID), 10)

	case KindOutputReg:
		dst = append(dst, "output:"...)
		return c.formatSubfield(dst, e.Src)

	case KindBundle:
		return e.Bundle.Format(dst)

	case KindSetVlanVid:
		dst = append(dst, "mod_vlan_vid:"...)
		return strconv.AppendUint(dst, uint64(e.VlanVid), 10)

	case KindSetVlanPcp:
		dst = append(dst, "mod_vlan_pcp:"...)
		return strconv.AppendUint(dst, uint64(e.VlanPcp), 10)

	case KindStripVlan:
		return append(dst, "strip_vlan"...)

	case KindSetEthSrc:
		dst = append(dst, "mod_dl_src:"...)
		return appendMac(dst, e.Mac)

	case KindSetEthDst:
		dst = append(dst, "mod_dl_dst:"...)
		return appendMac(dst, e.Mac)

	case KindSetIPv4Src:
		dst = append(dst, "mod_nw_src:"...)
		return appendIPv4(dst, e.IPv4)

	case KindSetIPv4Dst:
		dst = append(dst, "mod_nw_dst:"...)
		return appendIPv4(dst, e.IPv4)

	case KindSetIPv4Dscp:
		dst = append(dst, "mod_nw_tos:"...)
		return strconv.AppendUint(dst, uint64(e.Dscp), 10)

	case KindSetL4SrcPort:
		dst = append(dst, "mod_tp_src:"...)
		return strconv.AppendUint(dst, uint64(e.Port), 10)

	case KindSetL4DstPort:
		dst = append(dst, "mod_tp_dst:"...)
		return strconv.AppendUint(dst, uint64(e.Port), 10)

	case KindRegMove:
		return e.RegMove.Format(dst)

	case KindRegLoad:
		return e.RegLoad.Format(dst)

	case KindDecTTL:
		return append(dst, "dec_ttl"...)

	case KindSetTunnel:
		if e.TunID <= 0xffffffff && e.CompatHint != CompatNxSetTunnel64 {
			dst = append(dst, "set_tunnel:0x"...)
		} else {
			dst = append(dst, "set_tunnel64:0x"...)
		}
		return strconv.AppendUint(dst, e.TunID, 16)

	case KindSetQueue:
		dst = append(dst, "set_queue:"...)
		return strconv.AppendUint(dst, uint64(e.QueueID), 10)

	case KindPopQueue:
		return append(dst, "pop_queue"...)

	case KindFinTimeout:
		dst = append(dst, "fin_timeout("...)
		wrote := false
		if e.IdleTimeout != 0 {
			dst = append(dst, "idle_timeout="...)
			dst = strconv.AppendUint(dst, uint64(e.IdleTimeout), 10)
			wrote = true
		}
		if e.HardTimeout != 0 {
			if wrote {
				dst = append(dst, ',')
			}
			dst = append(dst, "hard_timeout="...)
			dst = strconv.AppendUint(dst, uint64(e.HardTimeout), 10)
		}
		return append(dst, ')')

	case KindResubmit:
		if e.TableID == 0xff && e.CompatHint != CompatNxResubmitTable {
			dst = append(dst, "resubmit:"...)
			return port.FormatPort(dst, e.InPort)
		}
		dst = append(dst, "resubmit("...)
		dst = port.FormatPort(dst, e.InPort)
		dst = append(dst, ',')
		dst = strconv.AppendUint(dst, uint64(e.TableID), 10)
		return append(dst, ')')

	case KindLearn:
		return e.Learn.Format(dst)

	case KindMultipath:
		return e.Multipath.Format(dst)

	case KindAutopath:
		dst = append(dst, "autopath("...)
		dst = strconv.AppendUint(dst, uint64(e.AutopathPort), 16)
		dst = append(dst, ',')
		dst = c.formatSubfield(dst, e.Src)
		return append(dst, ')')

	case KindNote:
		dst = append(dst, "note:"...)
		for i, b := range e.Bytes {
			if i > 0 {
				dst = append(dst, '.')
			}
			dst = appendHexByte(dst, b)
		}
		return dst

	case KindExit:
		return append(dst, "exit"...)

	default:
		return dst
	}
}

func (c *Codec) formatSubfield(dst []byte, ref field.Ref) []byte {
	reg := c.Opts.fields()
	if reg == nil {
		dst = append(dst, "field"...)
		return strconv.AppendUint(dst, uint64(ref.FieldID), 10)
	}
	return reg.FormatSubfield(dst, ref)
}

func appendMac(dst []byte, mac [6]byte) []byte {
	for i, b := range mac {
		if i > 0 {
			dst = append(dst, ':')
		}
		dst = appendHexByte(dst, b)
	}
	return dst
}

func appendIPv4(dst []byte, ip uint32) []byte {
	dst = strconv.AppendUint(dst, uint64(ip>>24), 10)
	dst = append(dst, '.')
	dst = strconv.AppendUint(dst, uint64((ip>>16)&0xff), 10)
	dst = append(dst, '.')
	dst = strconv.AppendUint(dst, uint64((ip>>8)&0xff), 10)
	dst = append(dst, '.')
	return strconv.AppendUint(dst, uint64(ip&0xff), 10)
}

const hexDigits = "0123456789abcdef"

func appendHexByte(dst []byte, b byte) []byte {
	return append(dst, hexDigits[b>>4], hexDigits[b&0x0f])
}
