package ofpact

import "github.com/fraant/ofpact/port"

// OutputsToPort reports whether list directs traffic at p: an output or
// enqueue entry naming p, or a controller entry when p is the CONTROLLER
// reserved port (spec.md §6).
func OutputsToPort(list *Actlist, p uint16) bool {
	found := false
	_ = list.Each(func(e *Entry) error {
		switch e.Kind {
		case KindOutput, KindEnqueue:
			if e.Port == p {
				found = true
			}
		case KindController:
			if p == port.Controller {
				found = true
			}
		}
		return nil
	})
	return found
}
