// Package port implements the reserved OpenFlow port numbers shared by
// v1.0, v1.1 and NX, plus the v1.1 <-> v1.0-style port-number remap and
// the output-port range check (spec.md §6 "Port remap" collaborator).
package port

import (
	"errors"
	"strconv"
)

// ErrBadPort is returned when a port number cannot be represented, or
// falls outside the caller's max_ports bound and isn't a reserved port.
var ErrBadPort = errors.New("invalid output port")

// Reserved v1.0/NX port numbers (16-bit), per spec.md §6.
const (
	Max        uint16 = 0xff00 // highest numbered non-reserved physical port, +1
	MaxPhys    uint16 = Max - 1
	InPort     uint16 = 0xfff8
	Table      uint16 = 0xfff9
	Normal     uint16 = 0xfffa
	Flood      uint16 = 0xfffb
	All        uint16 = 0xfffc
	Controller uint16 = 0xfffd
	Local      uint16 = 0xfffe
	None       uint16 = 0xffff
)

// Reserved v1.1 port numbers (32-bit). Their low 16 bits match the
// v1.0/NX reserved codes above by construction.
const (
	v11Max        uint32 = 0xffffff00
	v11InPort     uint32 = 0xfffffff8
	v11Table      uint32 = 0xfffffff9
	v11Normal     uint32 = 0xfffffffa
	v11Flood      uint32 = 0xfffffffb
	v11All        uint32 = 0xfffffffc
	v11Controller uint32 = 0xfffffffd
	v11Local      uint32 = 0xfffffffe
	v11Any        uint32 = 0xffffffff
)

// IsReserved returns true iff p is one of the named reserved ports.
func IsReserved(p uint16) bool {
	return p >= InPort
}

// RemapFromV11 maps a v1.1 32-bit port number to its 16-bit v1.0-style
// equivalent. Reserved codes translate to the matching reserved code;
// plain port numbers must fit in 16 bits to be representable in the
// internal actlist (spec.md §3 output.port is u16).
func RemapFromV11(p uint32) (uint16, error) {
	switch p {
	case v11InPort:
		return InPort, nil
	case v11Table:
		return Table, nil
	case v11Normal:
		return Normal, nil
	case v11Flood:
		return Flood, nil
	case v11All:
		return All, nil
	case v11Controller:
		return Controller, nil
	case v11Local:
		return Local, nil
	case v11Any:
		return None, nil
	}
	if p >= uint32(v11Max) {
		return 0, ErrBadPort
	}
	if p > uint32(MaxPhys) {
		return 0, ErrBadPort
	}
	return uint16(p), nil
}

// RemapToV11 widens a 16-bit v1.0-style port number into its v1.1
// 32-bit equivalent.
func RemapToV11(p uint16) uint32 {
	switch p {
	case InPort:
		return v11InPort
	case Table:
		return v11Table
	case Normal:
		return v11Normal
	case Flood:
		return v11Flood
	case All:
		return v11All
	case Controller:
		return v11Controller
	case Local:
		return v11Local
	case None:
		return v11Any
	default:
		return uint32(p)
	}
}

// CheckOutput validates p as an output/enqueue destination against
// maxPorts, per spec.md §4.6: p must be below maxPorts, or be one of
// the reserved ports that bypass the physical-port range check.
func CheckOutput(p uint16, maxPorts uint16) error {
	if p < maxPorts {
		return nil
	}
	switch p {
	case InPort, Local, Table, Normal, Flood, All, Controller:
		return nil
	default:
		return ErrBadPort
	}
}

// FormatPort appends the canonical textual spelling of p to dst, per
// spec.md §4.8 (e.g. "output:<n>" uses this for <n>).
func FormatPort(dst []byte, p uint16) []byte {
	switch p {
	case InPort:
		return append(dst, "IN_PORT"...)
	case Table:
		return append(dst, "TABLE"...)
	case Normal:
		return append(dst, "NORMAL"...)
	case Flood:
		return append(dst, "FLOOD"...)
	case All:
		return append(dst, "ALL"...)
	case Controller:
		return append(dst, "CONTROLLER"...)
	case Local:
		return append(dst, "LOCAL"...)
	case None:
		return append(dst, "NONE"...)
	default:
		return strconv.AppendUint(dst, uint64(p), 10)
	}
}
