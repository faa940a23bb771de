package wcfg

import (
	"github.com/wcfg-go/wcfg/semiring"
	"github.com/wcfg-go/wcfg/wcfgerr"
)

// DefaultMaxIters bounds Agenda's fixpoint loop.
const DefaultMaxIters = 100000

// DefaultTolerance is the default convergence threshold, measured via the
// semiring's Metric.
const DefaultTolerance = 1e-9

// AgendaOptions configures Grammar.Agenda.
type AgendaOptions struct {
	MaxIters int
	Tol      float64
}

// AgendaOption sets a field of AgendaOptions.
type AgendaOption func(*AgendaOptions)

// WithMaxIters overrides the fixpoint iteration budget.
func WithMaxIters(n int) AgendaOption { return func(o *AgendaOptions) { o.MaxIters = n } }

// WithTolerance overrides the convergence threshold.
func WithTolerance(tol float64) AgendaOption { return func(o *AgendaOptions) { o.Tol = tol } }

func defaultAgendaOptions() AgendaOptions {
	return AgendaOptions{MaxIters: DefaultMaxIters, Tol: DefaultTolerance}
}

// routingEntry names one occurrence of a body symbol: rule r's body at
// index pos.
type routingEntry struct {
	rule *Rule
	pos  int
}

// Agenda runs a semi-naive fixpoint solver: for every symbol, the total
// weight of all (possibly infinite) derivations rooted at it. Terminals
// and nullary heads seed the agenda at one/their own weight; every other
// symbol starts at the semiring's zero and is only pushed once something
// routes weight into it. Returns the best-effort chart alongside a
// wrapped ErrDivergence if max_iters is exhausted without the change
// agenda draining.
func (g *Grammar) Agenda(opts ...AgendaOption) (*semiring.Chart[Symbol], error) {
	o := defaultAgendaOptions()
	for _, f := range opts {
		f(&o)
	}

	R := g.R
	old := semiring.NewChart[Symbol](R)

	routing := map[Symbol][]routingEntry{}
	for _, r := range g.Rules {
		for k := range r.Body {
			routing[r.Body[k]] = append(routing[r.Body[k]], routingEntry{r, k})
		}
	}

	change := semiring.NewChart[Symbol](R)
	for a := range g.V {
		change.Increment(a, R.One())
	}
	for _, r := range g.Rules {
		if r.IsNullary() {
			change.Increment(r.Head, r.Weight)
		}
	}

	iters := 0
	for ; iters < o.MaxIters; iters++ {
		u, v, ok := change.Pop()
		if !ok {
			break
		}

		newVal := old.Get(u).Plus(v)
		if R.Metric(old.Get(u), newVal) <= o.Tol {
			continue
		}

		for _, entry := range routing[u] {
			r, k := entry.rule, entry.pos
			w := r.Weight
			for j := range r.Body {
				switch {
				case r.Body[j] != u:
					w = w.Times(old.Get(r.Body[j]))
				case j < k:
					w = w.Times(newVal)
				case j == k:
					w = w.Times(v)
				default:
					w = w.Times(old.Get(u))
				}
			}
			change.Increment(r.Head, w)
		}

		old.Set(u, newVal)
	}

	if change.Len() > 0 {
		g.logger().Debug().Int("iters", iters).Int("pending", change.Len()).Msg("agenda did not converge")
		return old, wcfgerr.Divergence("agenda: %d/%d iterations exhausted with %d symbols still pending", iters, o.MaxIters, change.Len())
	}
	return old, nil
}

// Treesum returns the total weight the grammar generates from its start
// symbol, via Agenda. If Agenda does not converge, the best-effort value
// is returned together with the wrapped ErrDivergence.
func (g *Grammar) Treesum() (semiring.Value, error) {
	chart, err := g.Agenda()
	return chart.Get(g.S), err
}
