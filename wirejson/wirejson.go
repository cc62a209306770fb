// Package wirejson provides the small set of JSON scalar helpers the
// ofpact package uses to give a parsed actlist a diagnostic JSON
// rendering alongside its canonical text formatter (spec.md §4.8).
//
// Grounded on the teacher's own json package: the same zero-copy
// unquote/append style, built on the same parser library.
package wirejson

import (
	"encoding/hex"
	"errors"
	"strconv"
	"unsafe"

	jsp "github.com/buger/jsonparser"
)

// ErrValue is returned when a JSON scalar can't be parsed as expected.
var ErrValue = errors.New("invalid value")

const hextable = "0123456789abcdef"

// Hex appends src as a JSON "0x..." string (or null for nil).
func Hex(dst []byte, src []byte) []byte {
	if src == nil {
		return append(dst, `null`...)
	}
	dst = append(dst, `"0x`...)
	for _, v := range src {
		dst = append(dst, hextable[v>>4], hextable[v&0x0f])
	}
	return append(dst, '"')
}

// UnHex parses a JSON "0x..." (or bare hex) string from src.
func UnHex(src []byte) ([]byte, error) {
	s := Q(src)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	out := make([]byte, len(s)/2)
	_, err := hex.Decode(out, s)
	return out, err
}

// U64 appends v as a plain JSON number.
func U64(dst []byte, v uint64) []byte {
	return strconv.AppendUint(dst, v, 10)
}

// UnU64 parses a plain JSON number (or quoted number) from src.
func UnU64(src []byte) (uint64, error) {
	return strconv.ParseUint(S(Q(src)), 10, 64)
}

// Str appends s as a quoted JSON string (no escaping beyond what's
// needed for the fixed vocabulary this package renders: opcode and
// entry-kind names, which never contain quotes or control characters).
func Str(dst []byte, s string) []byte {
	dst = append(dst, '"')
	dst = append(dst, s...)
	return append(dst, '"')
}

// S returns a string view of buf without copying.
func S(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// Q strips surrounding double quotes from buf, if present.
func Q(buf []byte) []byte {
	if l := len(buf); l > 1 && buf[0] == '"' && buf[l-1] == '"' {
		return buf[1 : l-1]
	}
	return buf
}

// ObjectEach calls cb for each key/value pair in the src JSON object.
func ObjectEach(src []byte, cb func(key string, val []byte, typ jsp.ValueType) error) error {
	return jsp.ObjectEach(src, func(key, val []byte, typ jsp.ValueType, _ int) error {
		return cb(string(key), val, typ)
	})
}

// ArrayEach calls cb for each element in the src JSON array.
func ArrayEach(src []byte, cb func(val []byte, typ jsp.ValueType) error) (reterr error) {
	defer func() {
		if r, ok := recover().(error); ok {
			reterr = r
		}
	}()
	jsp.ArrayEach(src, func(val []byte, typ jsp.ValueType, _ int, _ error) {
		if err := cb(val, typ); err != nil {
			panic(err)
		}
	})
	return nil
}

// Type re-exports jsonparser's value-type enum so callers of this
// package don't need to import it directly.
type Type = jsp.ValueType

const (
	STRING = jsp.String
	NUMBER = jsp.Number
	ARRAY  = jsp.Array
)
