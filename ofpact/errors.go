package ofpact

import "errors"

// Error kinds (spec.md §7). Returned, never panicked, except for
// unreachable program-logic invariants.
var (
	ErrBadLen          = errors.New("invalid action length")
	ErrBadType         = errors.New("unknown or obsolete action type")
	ErrBadVendor       = errors.New("vendor id is not the NX vendor id")
	ErrBadArgument     = errors.New("argument outside its allowed range")
	ErrBadOutPort      = errors.New("output port out of range")
	ErrUnknownInst     = errors.New("unknown instruction type")
	ErrUnsupInst       = errors.New("unsupported instruction type")
	ErrBadExperimenter = errors.New("bad experimenter instruction")
	ErrDupType         = errors.New("duplicate instruction type")
	ErrBadRequestLen   = errors.New("outer length field mismatch")
)
