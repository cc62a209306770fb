package ofpact

import (
	"fmt"

	"github.com/fraant/ofpact/wirejson"
)

// kindNames maps each Kind to the string spelling used in its JSON
// rendering. This is a diagnostic dump, not part of the wire contract
// (spec.md §1 scopes JSON handling out of the core codec; grounded on
// wirejson, adapted from the teacher's own json package usage in its
// message types).
var kindNames = map[Kind]string{
	KindOutput:       "output",
	KindController:   "controller",
	KindEnqueue:      "enqueue",
	KindOutputReg:    "output_reg",
	KindBundle:       "bundle",
	KindSetVlanVid:   "set_vlan_vid",
	KindSetVlanPcp:   "set_vlan_pcp",
	KindStripVlan:    "strip_vlan",
	KindSetEthSrc:    "set_eth_src",
	KindSetEthDst:    "set_eth_dst",
	KindSetIPv4Src:   "set_ipv4_src",
	KindSetIPv4Dst:   "set_ipv4_dst",
	KindSetIPv4Dscp:  "set_ipv4_dscp",
	KindSetL4SrcPort: "set_l4_src_port",
	KindSetL4DstPort: "set_l4_dst_port",
	KindRegMove:      "reg_move",
	KindRegLoad:      "reg_load",
	KindDecTTL:       "dec_ttl",
	KindSetTunnel:    "set_tunnel",
	KindSetQueue:     "set_queue",
	KindPopQueue:     "pop_queue",
	KindFinTimeout:   "fin_timeout",
	KindResubmit:     "resubmit",
	KindLearn:        "learn",
	KindMultipath:    "multipath",
	KindAutopath:     "autopath",
	KindNote:         "note",
	KindExit:         "exit",
	KindEND:          "end",
}

var kindFromName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, n := range kindNames {
		m[n] = k
	}
	return m
}()

// ToJSON appends a diagnostic JSON array rendering of list to dst. Each
// element carries its kind and the subset of scalar fields relevant to
// that kind; sub-codec payloads and output_reg entries are rendered only
// as their formatted text (a "text" member), and their raw wire bytes
// are not included.
func (c *Codec) ToJSON(list *Actlist, dst []byte) []byte {
	dst = append(dst, '[')
	first := true
	_ = list.Each(func(e *Entry) error {
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = c.entryToJSON(dst, e)
		return nil
	})
	return append(dst, ']')
}

func (c *Codec) entryToJSON(dst []byte, e *Entry) []byte {
	dst = append(dst, `{"kind":`...)
	dst = wirejson.Str(dst, kindNames[e.Kind])

	switch e.Kind {
	case KindOutput:
		dst = append(dst, `,"port":`...)
		dst = wirejson.U64(dst, uint64(e.Port))
		dst = append(dst, `,"max_len":`...)
		dst = wirejson.U64(dst, uint64(e.MaxLen))

	case KindEnqueue:
		dst = append(dst, `,"port":`...)
		dst = wirejson.U64(dst, uint64(e.Port))
		dst = append(dst, `,"queue":`...)
		dst = wirejson.U64(dst, uint64(e.QueueID))

	case KindController:
		dst = append(dst, `,"max_len":`...)
		dst = wirejson.U64(dst, uint64(e.MaxLen))
		dst = append(dst, `,"controller_id":`...)
		dst = wirejson.U64(dst, uint64(e.ControllerID))
		dst = append(dst, `,"reason":`...)
		dst = wirejson.U64(dst, uint64(e.Reason))

	case KindSetVlanVid:
		dst = append(dst, `,"vlan_vid":`...)
		dst = wirejson.U64(dst, uint64(e.VlanVid))

	case KindSetVlanPcp:
		dst = append(dst, `,"vlan_pcp":`...)
		dst = wirejson.U64(dst, uint64(e.VlanPcp))

	case KindSetEthSrc, KindSetEthDst:
		dst = append(dst, `,"mac":`...)
		dst = wirejson.Hex(dst, e.Mac[:])

	case KindSetIPv4Src, KindSetIPv4Dst:
		dst = append(dst, `,"ipv4":`...)
		dst = wirejson.U64(dst, uint64(e.IPv4))

	case KindSetIPv4Dscp:
		dst = append(dst, `,"dscp":`...)
		dst = wirejson.U64(dst, uint64(e.Dscp))

	case KindSetL4SrcPort, KindSetL4DstPort:
		dst = append(dst, `,"port":`...)
		dst = wirejson.U64(dst, uint64(e.Port))

	case KindSetTunnel:
		dst = append(dst, `,"tun_id":`...)
		dst = wirejson.U64(dst, e.TunID)
		dst = append(dst, `,"compat":`...)
		dst = wirejson.U64(dst, uint64(e.CompatHint))

	case KindSetQueue:
		dst = append(dst, `,"queue_id":`...)
		dst = wirejson.U64(dst, uint64(e.QueueID))

	case KindFinTimeout:
		dst = append(dst, `,"idle_timeout":`...)
		dst = wirejson.U64(dst, uint64(e.IdleTimeout))
		dst = append(dst, `,"hard_timeout":`...)
		dst = wirejson.U64(dst, uint64(e.HardTimeout))

	case KindResubmit:
		dst = append(dst, `,"in_port":`...)
		dst = wirejson.U64(dst, uint64(e.InPort))
		dst = append(dst, `,"table_id":`...)
		dst = wirejson.U64(dst, uint64(e.TableID))
		dst = append(dst, `,"compat":`...)
		dst = wirejson.U64(dst, uint64(e.CompatHint))

	case KindNote:
		dst = append(dst, `,"bytes":`...)
		dst = wirejson.Hex(dst, e.Bytes)

	case KindAutopath:
		dst = append(dst, `,"port":`...)
		dst = wirejson.U64(dst, uint64(e.AutopathPort))

	case KindBundle, KindLearn, KindMultipath, KindOutputReg, KindRegMove, KindRegLoad:
		dst = append(dst, `,"text":`...)
		dst = wirejson.Str(dst, string(c.formatOne(nil, e)))
	}

	return append(dst, '}')
}

// FromJSON parses the array produced by ToJSON back into list,
// supporting the same subset of scalar fields. Unknown kinds fail.
func (c *Codec) FromJSON(src []byte, list *Actlist) error {
	list.Reset()
	err := wirejson.ArrayEach(src, func(val []byte, typ wirejson.Type) error {
		e, err := c.entryFromJSON(val)
		if err != nil {
			return err
		}
		list.append(e)
		return nil
	})
	if err != nil {
		list.Reset()
		return err
	}
	list.finish()
	return nil
}

func (c *Codec) entryFromJSON(src []byte) (Entry, error) {
	var e Entry
	var kindSet bool
	err := wirejson.ObjectEach(src, func(key string, val []byte, typ wirejson.Type) error {
		switch key {
		case "kind":
			k, ok := kindFromName[wirejson.S(wirejson.Q(val))]
			if !ok {
				return fmt.Errorf("%w: unknown json kind", ErrBadType)
			}
			e.Kind = k
			kindSet = true
		case "port":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			if e.Kind == KindAutopath {
				e.AutopathPort = uint32(v)
			} else {
				e.Port = uint16(v)
			}
		case "max_len":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.MaxLen = uint16(v)
		case "queue", "queue_id":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.QueueID = uint32(v)
		case "controller_id":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.ControllerID = uint16(v)
		case "reason":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.Reason = uint8(v)
		case "vlan_vid":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.VlanVid = uint16(v)
		case "vlan_pcp":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.VlanPcp = uint8(v)
		case "mac":
			b, err := wirejson.UnHex(val)
			if err != nil {
				return err
			}
			copy(e.Mac[:], b)
		case "ipv4":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.IPv4 = uint32(v)
		case "dscp":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.Dscp = uint8(v)
		case "tun_id":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.TunID = v
		case "compat":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.CompatHint = CompatTag(v)
		case "idle_timeout":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.IdleTimeout = uint16(v)
		case "hard_timeout":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.HardTimeout = uint16(v)
		case "in_port":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.InPort = uint16(v)
		case "table_id":
			v, err := wirejson.UnU64(val)
			if err != nil {
				return err
			}
			e.TableID = uint8(v)
		case "bytes":
			b, err := wirejson.UnHex(val)
			if err != nil {
				return err
			}
			e.Bytes = b
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	if !kindSet {
		return Entry{}, ErrBadType
	}
	return e, nil
}
