package ofpact

import "bytes"

// Equal reports whether a and b are equal (spec.md §4.9): their
// serialized byte tails have identical length and are bytewise
// identical. v1.0 emission is canonical enough for this (spec.md §4.9,
// §3 invariants) since it's a deterministic function of entry content.
func (c *Codec) Equal(a, b *Actlist) bool {
	return bytes.Equal(c.EmitV10(a, nil), c.EmitV10(b, nil))
}
