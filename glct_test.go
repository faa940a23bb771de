package wcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcfg-go/wcfg/semiring"
)

// TestGLCTRoundTrip builds 1:S->S a, 1:S->b, Xs={b}, Ps={S->S a}. GLCT
// must remove the left recursion, and for every derivation of "b a a" in
// the original grammar, Φ_G must map it to a unique derivation yielding
// "b a a", with the original derivation's own weight equal to 1 (every
// rule here carries weight 1).
func TestGLCTRoundTrip(t *testing.T) {
	g := New(semiring.Real, Nonterminal("S"))
	recursive := g.Add(semiring.Weight(1), Nonterminal("S"), Nonterminal("S"), Terminal("a"))
	g.Add(semiring.Weight(1), Nonterminal("S"), Terminal("b"))

	require.True(t, g.IsLeftRecursive())

	xs := map[Symbol]bool{Terminal("b"): true}
	ps := map[*Rule]bool{recursive: true}

	ng, mapping := g.LeftCornerGeneralizedMapping(xs, ps)
	assert.False(t, ng.IsLeftRecursive())

	target := []Terminal{Terminal("b"), Terminal("a"), Terminal("a")}

	var found []*Derivation
	for d := range g.DerivationsOf(target, 10) {
		found = append(found, d)
	}
	require.Len(t, found, 1, "expected exactly one derivation of \"baa\"")

	d := found[0]
	assert.InDelta(t, 1.0, semiring.AsFloat64(d.Weight()), 1e-9)

	mapped := mapping.Map(d)
	md, ok := mapped.(*Derivation)
	require.True(t, ok, "Φ_G(d) must itself be a derivation")
	assert.Equal(t, target, md.Yield())

	// Uniqueness: re-mapping the same derivation yields an equal tree.
	again := mapping.Map(d).(*Derivation)
	assert.True(t, md.Equal(again))
}

// TestElimLeftRecursionRemovesCycles checks ElimLeftRecursion's own
// Ps/Xs choice (FindLeftRecursiveRules + SufficientXs) also eliminates the
// cycle end to end.
func TestElimLeftRecursionRemovesCycles(t *testing.T) {
	g := New(semiring.Real, Nonterminal("S"))
	g.Add(semiring.Weight(1), Nonterminal("S"), Nonterminal("S"), Terminal("a"))
	g.Add(semiring.Weight(1), Nonterminal("S"), Terminal("b"))

	require.True(t, g.IsLeftRecursive())
	ng := g.ElimLeftRecursion()
	assert.False(t, ng.IsLeftRecursive())
}
