package wcfg

import (
	"fmt"

	"github.com/wcfg-go/wcfg/semiring"
)

// NullWeight computes, for every nonterminal, the total weight of
// generating the empty string: the epsilon-only sub-grammar (every rule
// whose body contains no terminal) run through Agenda.
func (g *Grammar) NullWeight() (*semiring.Chart[Symbol], error) {
	ecfg := g.Spawn(WithVocabulary(map[Symbol]bool{}))
	for _, r := range g.Rules {
		hasTerminal := false
		for _, y := range r.Body {
			if g.IsTerminal(y) {
				hasTerminal = true
				break
			}
		}
		if !hasTerminal {
			ecfg.Add(r.Weight, r.Head, r.Body...)
		}
	}
	return ecfg.Agenda()
}

// NullaryRemoveOptions configures Grammar.NullaryRemove.
type NullaryRemoveOptions struct {
	Binarize bool
	Recovery bool
	Rename   func(Symbol) Nonterminal
}

// NullaryRemoveOption sets a field of NullaryRemoveOptions.
type NullaryRemoveOption func(*NullaryRemoveOptions)

// WithRecovery keeps, for every nullable symbol, a weight-one bridge rule
// down to its renamed (non-nullable) counterpart, so derivations through
// the pre-image symbol are still reachable after the transform.
func WithRecovery(recovery bool) NullaryRemoveOption {
	return func(o *NullaryRemoveOptions) { o.Recovery = recovery }
}

// WithoutBinarize skips NullaryRemove's automatic Binarize pre-pass (the
// caller must already have binarized, or know their grammar's rule
// bodies are short enough that the mask loop in pushNullWeights stays
// cheap).
func WithoutBinarize() NullaryRemoveOption {
	return func(o *NullaryRemoveOptions) { o.Binarize = false }
}

// WithRenamer overrides how NullaryRemove names the non-nullable
// counterpart of a nullable symbol.
func WithRenamer(f func(Symbol) Nonterminal) NullaryRemoveOption {
	return func(o *NullaryRemoveOptions) { o.Rename = f }
}

func defaultNullaryRename(x Symbol) Nonterminal {
	return Nonterminal(fmt.Sprintf("$%s", x))
}

func defaultNullaryRemoveOptions() NullaryRemoveOptions {
	return NullaryRemoveOptions{Binarize: true, Rename: defaultNullaryRename}
}

// NullaryRemove returns an equivalent grammar with no nullary rules
// except possibly one at the start symbol (WithRecovery additionally
// keeps a nullary rule at each nullable original symbol). Binarizes
// first (unless WithoutBinarize is passed) so pushNullWeights' per-rule
// power-set enumeration never runs over a body wider than two symbols,
// and always separates the start symbol.
func (g *Grammar) NullaryRemove(opts ...NullaryRemoveOption) (*Grammar, error) {
	o := defaultNullaryRemoveOptions()
	for _, f := range opts {
		f(&o)
	}

	h := g
	if o.Binarize {
		h = h.Binarize()
	}
	h = h.SeparateStart()

	nullWeight, err := h.NullWeight()
	if err != nil {
		return nil, err
	}
	return h.pushNullWeights(nullWeight, o.Recovery, o.Rename), nil
}

// pushNullWeights replicates every rule over the 2^n ways its body
// symbols can be "absorbed" into their null weight instead of surviving
// into the new body, and renames every surviving symbol away from its
// nullable original so the two no longer collide.
func (g *Grammar) pushNullWeights(nullWeight *semiring.Chart[Symbol], recovery bool, rename func(Symbol) Nonterminal) *Grammar {
	R := g.R
	rewrite := func(x Symbol) Symbol {
		if nullWeight.Get(x).Equal(R.Zero()) || x == g.S {
			return x
		}
		return rename(x)
	}

	ng := g.Spawn()
	ng.Add(nullWeight.Get(g.S), g.S)

	if recovery {
		for x := range g.N {
			rx := rewrite(x)
			if rx == x {
				continue
			}
			ng.Add(nullWeight.Get(x), x)
			ng.Add(R.One(), x, rx)
		}
	}

	for _, r := range g.Rules {
		if r.IsNullary() {
			continue
		}
		n := len(r.Body)
		for mask := 0; mask < (1 << uint(n)); mask++ {
			v := r.Weight
			newBody := make([]Symbol, 0, n)
			for i := 0; i < n; i++ {
				if mask&(1<<uint(i)) != 0 {
					v = v.Times(nullWeight.Get(r.Body[i]))
				} else {
					newBody = append(newBody, rewrite(r.Body[i]))
				}
			}
			if len(newBody) > 0 {
				ng.Add(v, rewrite(r.Head), newBody...)
			}
		}
	}

	return ng
}
