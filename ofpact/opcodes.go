package ofpact

// Wire opcodes for OpenFlow v1.0 actions (spec.md §4.3).
const (
	v10Output       uint16 = 0
	v10SetVlanVid   uint16 = 1
	v10SetVlanPcp   uint16 = 2
	v10StripVlan    uint16 = 3
	v10SetDlSrc     uint16 = 4
	v10SetDlDst     uint16 = 5
	v10SetNwSrc     uint16 = 6
	v10SetNwDst     uint16 = 7
	v10SetNwTos     uint16 = 8
	v10SetTpSrc     uint16 = 9
	v10SetTpDst     uint16 = 10
	v10Enqueue      uint16 = 11
	v10VendorEscape uint16 = 0xffff
)

// Wire opcodes for OpenFlow v1.1 actions (spec.md §4.3, §4.7). v1.1 has
// no opcode for ENQUEUE or STRIP_VLAN, matching spec.md §4.7's
// documented gap.
const (
	v11Output             uint16 = 0
	v11SetVlanVid         uint16 = 1
	v11SetVlanPcp         uint16 = 2
	v11SetDlSrc           uint16 = 3
	v11SetDlDst           uint16 = 4
	v11SetNwSrc           uint16 = 5
	v11SetNwDst           uint16 = 6
	v11SetNwTos           uint16 = 7
	v11SetTpSrc           uint16 = 9
	v11SetTpDst           uint16 = 10
	v11DecTTL             uint16 = 21
	v11ExperimenterEscape uint16 = 0xffff
)

// v1.1 instruction kinds (spec.md §4.4).
const (
	instGotoTable     uint16 = 1
	instWriteMetadata uint16 = 2
	instWriteActions  uint16 = 3
	instApplyActions  uint16 = 4
	instClearActions  uint16 = 5
	instExperimenter  uint16 = 0xffff
)

// NXVendorID is the vendor id recognized at the v1.0/v1.1 vendor-escape
// point (spec.md §4.2, §6).
const NXVendorID uint32 = 0x00002320

// NX vendor subtypes (spec.md §4.2, §4.3, §4.7). subNxSnat and
// subNxDropSpoofedArp are explicitly obsolete (spec.md §8 property 7).
const (
	subNxSnat           uint16 = 0
	subNxResubmit       uint16 = 1
	subNxSetTunnel      uint16 = 2
	subNxDropSpoofedArp uint16 = 3
	subNxSetQueue       uint16 = 4
	subNxPopQueue       uint16 = 5
	subNxRegMove        uint16 = 6
	subNxRegLoad        uint16 = 7
	subNxNote           uint16 = 8
	subNxSetTunnel64    uint16 = 9
	subNxMultipath      uint16 = 10
	subNxAutopath       uint16 = 11
	subNxBundle         uint16 = 12
	subNxBundleLoad     uint16 = 13
	subNxResubmitTable  uint16 = 14
	subNxOutputReg      uint16 = 15
	subNxLearn          uint16 = 16
	subNxExit           uint16 = 17
	subNxFinTimeout     uint16 = 18
	subNxDecTTL         uint16 = 19
	subNxController     uint16 = 20
)

// actionHeaderSize is sizeof(action_header): type(2) len(2) pad(4), the
// minimum declared length any action unit must meet (spec.md §4.2 step 2).
const actionHeaderSize = 8

// actionBodyOffset is where a standard (non-vendor) action's own fields
// begin: right after the common type(2) len(2) prefix. Standard v1.0/v1.1
// action structs reuse the rest of their minimum 8 bytes for their own
// fields rather than padding them out, unlike the NX vendor path.
const actionBodyOffset = 4

// nxHeaderSize is the common NX vendor-action header: type(2) len(2)
// vendor(4) subtype(2).
const nxHeaderSize = 10

// nxSubtypeInfo describes one NX subtype's expected struct size and
// whether it may be extended beyond that size (spec.md §4.2).
type nxSubtypeInfo struct {
	size       int
	extensible bool
	obsolete   bool
}

// nxSubtypes is the (subtype -> expected struct size) table of spec.md
// §4.2. Sizes are the full on-wire action length, including the common
// 10-byte NX header. Fixed-size entries are multiples of the 8-byte
// alignment unit; the extensible note entry's minimum is the bare
// 10-byte header.
var nxSubtypes = map[uint16]nxSubtypeInfo{
	subNxSnat:           {obsolete: true},
	subNxDropSpoofedArp: {obsolete: true},
	subNxResubmit:       {size: 16},
	subNxSetTunnel:      {size: 16},
	subNxSetQueue:       {size: 16},
	subNxPopQueue:       {size: 16},
	subNxRegMove:        {size: 24},
	subNxRegLoad:        {size: 24},
	subNxNote:           {size: nxHeaderSize, extensible: true},
	subNxSetTunnel64:    {size: 24},
	subNxMultipath:      {size: 32, extensible: true},
	subNxAutopath:       {size: 24},
	subNxBundle:         {size: 16, extensible: true},
	subNxBundleLoad:     {size: 16, extensible: true},
	subNxResubmitTable:  {size: 16},
	subNxOutputReg:      {size: 24},
	subNxLearn:          {size: 16, extensible: true},
	subNxExit:           {size: 16},
	subNxFinTimeout:     {size: 16},
	subNxDecTTL:         {size: 16},
	subNxController:     {size: 16},
}
