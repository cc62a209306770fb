package ofpact

import "github.com/fraant/ofpact/binary"

var msb = binary.Msb

// v10Sizes is the (opcode -> struct size) table for standard v1.0
// actions (spec.md §4.2 "dispatch T in the dialect's opcode table").
var v10Sizes = map[uint16]int{
	v10Output:     8,
	v10SetVlanVid: 8,
	v10SetVlanPcp: 8,
	v10StripVlan:  8,
	v10SetDlSrc:   16,
	v10SetDlDst:   16,
	v10SetNwSrc:   8,
	v10SetNwDst:   8,
	v10SetNwTos:   8,
	v10SetTpSrc:   8,
	v10SetTpDst:   8,
	v10Enqueue:    16,
}

// v11Sizes is the (opcode -> struct size) table for standard v1.1
// actions.
var v11Sizes = map[uint16]int{
	v11Output:     16,
	v11SetVlanVid: 8,
	v11SetVlanPcp: 8,
	v11SetDlSrc:   16,
	v11SetDlDst:   16,
	v11SetNwSrc:   8,
	v11SetNwDst:   8,
	v11SetNwTos:   8,
	v11SetTpSrc:   8,
	v11SetTpDst:   8,
	v11DecTTL:     8,
}

// actionHeader is the result of decoding a candidate action's common
// header (spec.md §4.2).
type actionHeader struct {
	Type   uint16
	Len    int
	Vendor uint32 // only meaningful when Type is the dialect's vendor escape
	Sub    uint16 // only meaningful when Type is the dialect's vendor escape
}

// decodeHeader validates and reads the header of the action unit at the
// front of src, per spec.md §4.2 steps 1-5. vendorEscape is the
// dialect's vendor-escape opcode (v10VendorEscape or
// v11ExperimenterEscape); sizes is the dialect's (opcode -> size) table.
func decodeHeader(src []byte, vendorEscape uint16, sizes map[uint16]int) (actionHeader, error) {
	if len(src) < actionHeaderSize {
		return actionHeader{}, ErrBadLen
	}
	l := int(msb.Uint16(src[2:4]))
	if l == 0 || l%binary.Unit != 0 || l < actionHeaderSize || l > len(src) {
		return actionHeader{}, ErrBadLen
	}
	t := msb.Uint16(src[0:2])

	if t == vendorEscape {
		if l < nxHeaderSize {
			return actionHeader{}, ErrBadLen
		}
		vendor := msb.Uint32(src[4:8])
		if vendor != NXVendorID {
			return actionHeader{}, ErrBadVendor
		}
		sub := msb.Uint16(src[8:10])
		info, ok := nxSubtypes[sub]
		if !ok || info.obsolete {
			return actionHeader{}, ErrBadType
		}
		if info.extensible {
			if l < info.size {
				return actionHeader{}, ErrBadLen
			}
		} else if l != info.size {
			return actionHeader{}, ErrBadLen
		}
		return actionHeader{Type: t, Len: l, Vendor: vendor, Sub: sub}, nil
	}

	size, ok := sizes[t]
	if !ok {
		return actionHeader{}, ErrBadType
	}
	if l != size {
		return actionHeader{}, ErrBadLen
	}
	return actionHeader{Type: t, Len: l}, nil
}
