package ofpact

import (
	"github.com/fraant/ofpact/field"
	"github.com/fraant/ofpact/port"
)

// CheckList validates every entry in list against ctx and maxPorts,
// stopping at the first error (spec.md §4.6, §6).
func (c *Codec) CheckList(list *Actlist, ctx field.FlowCtx, maxPorts uint16) error {
	return list.Each(func(e *Entry) error {
		return c.check(e, ctx, maxPorts)
	})
}

// check validates a single entry (spec.md §4.6).
func (c *Codec) check(e *Entry, ctx field.FlowCtx, maxPorts uint16) error {
	switch e.Kind {
	case KindOutput:
		return port.CheckOutput(e.Port, maxPorts)

	case KindEnqueue:
		if e.Port == port.InPort || e.Port == port.Local {
			return nil
		}
		if e.Port < maxPorts {
			return nil
		}
		return ErrBadOutPort

	case KindOutputReg:
		return c.checkField(e.Src, ctx)

	case KindAutopath:
		return c.checkField(e.Src, ctx)

	case KindRegMove:
		return e.RegMove.Check(ctx)

	case KindRegLoad:
		return e.RegLoad.Check(ctx)

	case KindBundle:
		return e.Bundle.Check(ctx)

	case KindLearn:
		return e.Learn.Check(ctx)

	case KindMultipath:
		return e.Multipath.Check(ctx)

	default:
		return nil
	}
}

func (c *Codec) checkField(ref field.Ref, ctx field.FlowCtx) error {
	reg := c.Opts.fields()
	if reg == nil {
		return field.ErrBadFieldRef
	}
	return reg.CheckSrc(ref, ctx)
}
