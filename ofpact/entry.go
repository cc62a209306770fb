package ofpact

import (
	"github.com/fraant/ofpact/field"
	"github.com/fraant/ofpact/subcodec"
)

// Kind selects the active variant of an Entry (spec.md §3), the same
// selector-field pattern the teacher uses for Msg.Upper choosing
// between Msg.Open and Msg.Update.
type Kind int

const (
	KindOutput Kind = iota
	KindController
	KindEnqueue
	KindOutputReg
	KindBundle
	KindSetVlanVid
	KindSetVlanPcp
	KindStripVlan
	KindSetEthSrc
	KindSetEthDst
	KindSetIPv4Src
	KindSetIPv4Dst
	KindSetIPv4Dscp
	KindSetL4SrcPort
	KindSetL4DstPort
	KindRegMove
	KindRegLoad
	KindDecTTL
	KindSetTunnel
	KindSetQueue
	KindPopQueue
	KindFinTimeout
	KindResubmit
	KindLearn
	KindMultipath
	KindAutopath
	KindNote
	KindExit
	KindEND
)

// CompatTag records which wire opcode an NX entry was parsed from, so
// an emitter can reproduce the same spelling when more than one is
// semantically equivalent (spec.md §3, §9 "Compat hints").
type CompatTag int

const (
	CompatNone CompatTag = iota
	CompatNxResubmit
	CompatNxResubmitTable
	CompatNxSetTunnel
	CompatNxSetTunnel64
)

// Entry is the tagged variant over every action/instruction kind this
// codec understands (spec.md §3). Only the fields relevant to Kind are
// meaningful; the rest are zero. This mirrors msg.Msg's Upper selector
// choosing between a handful of concrete payload structs, generalized
// to many more variants.
type Entry struct {
	Kind Kind

	// output, enqueue, set_queue
	Port    uint16
	MaxLen  uint16
	QueueID uint32

	// controller
	ControllerID uint16
	Reason       uint8

	// output_reg, autopath (dst)
	Src field.Ref

	// set_vlan_vid, set_vlan_pcp
	VlanVid uint16
	VlanPcp uint8

	// set_eth_src, set_eth_dst
	Mac [6]byte

	// set_ipv4_src, set_ipv4_dst
	IPv4 uint32

	// set_ipv4_dscp
	Dscp uint8

	// set_l4_src_port, set_l4_dst_port reuse Port

	// set_tunnel
	TunID      uint64
	CompatHint CompatTag

	// fin_timeout
	IdleTimeout uint16
	HardTimeout uint16

	// resubmit
	InPort  uint16
	TableID uint8

	// autopath (port)
	AutopathPort uint32

	// note
	Bytes []byte

	// opaque sub-codec payloads
	Bundle    *subcodec.Bundle
	RegMove   *subcodec.RegMove
	RegLoad   *subcodec.RegLoad
	Learn     *subcodec.Learn
	Multipath *subcodec.Multipath
}

// Actlist is an ordered sequence of Entry values, always ending with a
// single KindEND sentinel once finalized (spec.md §3 invariant 2).
type Actlist struct {
	Entries []Entry
}

// Reset clears the actlist to empty, for the "actlist is cleared on
// error" contract of spec.md §6/§7.
func (a *Actlist) Reset() {
	a.Entries = a.Entries[:0]
}

// append adds e to the list. Callers are responsible for calling
// finish to append the END sentinel once parsing completes.
func (a *Actlist) append(e Entry) {
	a.Entries = append(a.Entries, e)
}

// finish appends the END sentinel (spec.md §3 invariant 2: exactly one,
// only at the tail).
func (a *Actlist) finish() {
	a.Entries = append(a.Entries, Entry{Kind: KindEND})
}

// IsEmpty reports whether the actlist holds no entries other than END
// (spec.md §4.8, §8 property 12: "actions=drop").
func (a *Actlist) IsEmpty() bool {
	return len(a.Entries) == 0 || (len(a.Entries) == 1 && a.Entries[0].Kind == KindEND)
}

// Each iterates the non-sentinel entries in order (spec.md §4.5: "read-only,
// terminates on END").
func (a *Actlist) Each(fn func(e *Entry) error) error {
	for i := range a.Entries {
		if a.Entries[i].Kind == KindEND {
			return nil
		}
		if err := fn(&a.Entries[i]); err != nil {
			return err
		}
	}
	return nil
}
