package wcfg

import (
	"github.com/wcfg-go/wcfg/semiring"
	"github.com/wcfg-go/wcfg/wcfgerr"
)

// ElimNullarySlash is the optimized nullary-removal pass for grammars
// produced by LeftCornerGeneralized, where nullary rules occur only at
// Slash heads: instead of running the general-purpose Agenda fixpoint
// over the whole grammar, it sums null weight along unary Slash-to-Slash
// chains via one Closure call, since that is the only way a Slash
// nonterminal can be nullable by construction.
//
// Panics (ErrPrecondition) if a nullary rule's head is not a Slash
// symbol, or a unary Slash rule's body is not itself a Slash symbol; the
// documented remedy is to call NullaryRemove on the grammar instead.
func (g *Grammar) ElimNullarySlash(opts ...NullaryRemoveOption) (*Grammar, error) {
	o := defaultNullaryRemoveOptions()
	for _, f := range opts {
		f(&o)
	}

	h := g
	if o.Binarize {
		h = h.Binarize()
	}

	W := semiring.NewChart[EdgeKey](h.R)
	v := semiring.NewChart[Symbol](h.R)

	for _, r := range h.Rules {
		_, headIsSlash := r.Head.(Slash)
		switch {
		case r.IsUnary() && headIsSlash:
			_, bodyIsSlash := r.Body[0].(Slash)
			invariant(bodyIsSlash, wcfgerr.Precondition("elim_nullary_slash: unary slash rule %v has a non-slash body", r))
			W.Increment(EdgeKey{r.Head, r.Body[0]}, r.Weight)
		case r.IsNullary():
			invariant(headIsSlash, wcfgerr.Precondition("elim_nullary_slash: nullary rule at non-slash head %v; call NullaryRemove instead", r.Head))
			v.Increment(r.Head, r.Weight)
		}
	}

	nodes := h.nonterminals()
	K := Closure(h.R, nodes, W)

	nullWeight := semiring.NewChart[Symbol](h.R)
	for _, X := range nodes {
		acc := h.R.Zero()
		for _, Y := range nodes {
			acc = acc.Plus(K.Get(EdgeKey{X, Y}).Times(v.Get(Y)))
		}
		nullWeight.Set(X, acc)
	}

	return h.pushNullWeights(nullWeight, o.Recovery, o.Rename), nil
}
