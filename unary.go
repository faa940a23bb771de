package wcfg

import "github.com/wcfg-go/wcfg/semiring"

// UnaryRemove returns an equivalent grammar with no unary chains between
// nonterminals: a single pass of Closure over the chart of direct
// unary-rule weights collapses every nonterminal-to-nonterminal unary
// chain into a direct weight, which every surviving (non-chain) rule is
// then rescaled by per head symbol.
func (g *Grammar) UnaryRemove() *Grammar {
	A := semiring.NewChart[EdgeKey](g.R)
	for _, r := range g.Rules {
		if r.IsUnary() && g.IsNonterminal(r.Body[0]) {
			A.Increment(EdgeKey{r.Body[0], r.Head}, r.Weight)
		}
	}

	nodes := g.nonterminals()
	W := Closure(g.R, nodes, A)

	ng := g.Spawn()
	for _, r := range g.Rules {
		if r.IsUnary() && g.IsNonterminal(r.Body[0]) {
			continue
		}
		for _, Y := range nodes {
			w := W.Get(EdgeKey{r.Head, Y}).Times(r.Weight)
			if w.Equal(g.R.Zero()) {
				continue
			}
			ng.Add(w, Y, r.Body...)
		}
	}
	return ng
}
