package lifecycle

import (
	"time"

	"github.com/hartmut/reprise/internal/section"
)

// SideEffect is the outcome of one side-effecting call made during a
// transition. A nil Err means it succeeded.
type SideEffect struct {
	Name string
	Err  error
}

// TransitionReport describes what a lifecycle transition did. The caller
// logs and discards it; side-effect failures never abort the state change.
type TransitionReport struct {
	SectionID  string
	From       section.State
	To         section.State
	Suppressed bool

	Tau          float64
	IntervalDays int
	NextReview   *time.Time
	SessionID    string // id of the newly inserted Planned session, if any

	SideEffects []SideEffect
}

func (r *TransitionReport) addEffect(name string, err error) {
	r.SideEffects = append(r.SideEffects, SideEffect{Name: name, Err: err})
}

// Failed returns the side effects that reported an error.
func (r *TransitionReport) Failed() []SideEffect {
	var out []SideEffect
	for _, fx := range r.SideEffects {
		if fx.Err != nil {
			out = append(out, fx)
		}
	}
	return out
}

// OK reports whether every side effect succeeded.
func (r *TransitionReport) OK() bool {
	return len(r.Failed()) == 0
}
