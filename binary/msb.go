// Package binary provides binary read/write methods.
package binary

import (
	"encoding/binary"
)

var Msb = msb{
	binary.BigEndian,
	binary.BigEndian,
}

type msb struct {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Unit is the alignment granularity for action and instruction units on the wire.
const Unit = 8

// Align8 rounds l up to the next multiple of Unit.
func Align8(l int) int {
	if r := l % Unit; r != 0 {
		return l + (Unit - r)
	}
	return l
}

// Pad8 appends zero bytes to dst so its length becomes a multiple of Unit,
// and returns the extended slice.
func Pad8(dst []byte) []byte {
	if r := len(dst) % Unit; r != 0 {
		var zeros [Unit]byte
		dst = append(dst, zeros[:Unit-r]...)
	}
	return dst
}
