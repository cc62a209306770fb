package ofpact

import (
	"github.com/fraant/ofpact/diag"
	"github.com/fraant/ofpact/field"
)

// Options bundles the codec's external collaborators (spec.md §6), the
// way the teacher's pipe.Options bundles a pipe's logger and tunables
// rather than threading them through every call.
type Options struct {
	// Fields resolves NXM headers and checks/formats field references.
	// Required for any dialect that carries output_reg, reg_move,
	// reg_load or autopath entries.
	Fields field.Registry

	// Diag receives rate-limited parse/emit warnings. Nil is equivalent
	// to diag.Nop().
	Diag *diag.Sink
}

// DefaultOptions returns an Options with a discarding diagnostic sink
// and no field registry (callers that never touch NXM-addressed fields
// don't need one).
func DefaultOptions() Options {
	return Options{Diag: diag.Nop()}
}

func (o Options) diag() *diag.Sink {
	if o.Diag == nil {
		return diag.Nop()
	}
	return o.Diag
}

func (o Options) fields() field.Registry {
	return o.Fields
}
