// Package ofpact implements the OpenFlow action/instruction codec:
// bidirectional conversion between wire-format v1.0/v1.1/NX action and
// instruction bytes and a protocol-neutral Actlist, plus structural
// validation, semantic checking, formatting and equality.
//
// Grounded on the teacher's msg package: a tagged-variant Entry
// (mirroring Msg's Upper-selected payload), per-dialect parse/emit
// functions (mirroring msg.Msg.FromWire per message type), and a
// dispatch-table pattern for vendor subtypes (mirroring attrs.AttrNew's
// opcode-to-constructor map).
package ofpact

// Codec bundles the external collaborators a parse/emit/check/format
// call needs (spec.md §6): a field registry and a diagnostic sink.
// The zero value is usable (no field registry, a discarding sink).
type Codec struct {
	Opts Options
}

// New returns a Codec configured with opts.
func New(opts Options) *Codec {
	return &Codec{Opts: opts}
}
