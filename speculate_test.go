package wcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcfg-go/wcfg/semiring"
)

// TestSpeculationMappingFrozenPassThrough exercises Φ_S's first case: a
// rule outside Ps is mapped to a bare Frozen wrapper, with no slash tail
// since its head is not in Xs.
func TestSpeculationMappingFrozenPassThrough(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	rB := g.Add(semiring.Bool(true), Nonterminal("A"), Terminal("b"))

	_, m := g.Speculate(map[Symbol]bool{}, WithPs(map[*Rule]bool{}))

	dv := NewDerivation(rB, Nonterminal("A"), Terminal("b"))
	mapped := m.Map(dv).(*Derivation)

	require.Len(t, mapped.Children, 1)
	frozen, ok := mapped.Children[0].(*Derivation)
	require.True(t, ok)
	assert.Equal(t, Frozen{X: Nonterminal("A")}, frozen.X)
}

// TestSpeculationMappingSlashTailWhenHeadInXs exercises the branch where
// the mapped symbol IS in Xs: the result carries a trailing Slash(X,X)
// sibling alongside the frozen subtree.
func TestSpeculationMappingSlashTailWhenHeadInXs(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	rB := g.Add(semiring.Bool(true), Nonterminal("A"), Terminal("b"))

	xs := map[Symbol]bool{Nonterminal("A"): true}
	_, m := g.Speculate(xs, WithPs(map[*Rule]bool{}))

	dv := NewDerivation(rB, Nonterminal("A"), Terminal("b"))
	mapped := m.Map(dv).(*Derivation)

	require.Len(t, mapped.Children, 2)
	_, isFrozen := mapped.Children[0].(*Derivation)
	assert.True(t, isFrozen)
	slashLeaf, ok := mapped.Children[1].(*Derivation)
	require.True(t, ok)
	assert.Equal(t, Slash{Y: Nonterminal("A"), Z: Nonterminal("A")}, slashLeaf.X)
}

// TestSpeculationMappingSpineTransposeTwoChildren exercises Φ_S's final
// two-children branch: a Ps rule whose left corner's own mapped image
// already carries a Slash tail (because that left corner's head is in
// Xs), requiring the slashPivotName bookkeeping.
func TestSpeculationMappingSpineTransposeTwoChildren(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	rTop := g.Add(semiring.Bool(true), Nonterminal("S"), Nonterminal("A"), Terminal("a"))
	rLeaf := g.Add(semiring.Bool(true), Nonterminal("A"), Terminal("b"))

	xs := map[Symbol]bool{Nonterminal("A"): true}
	ps := map[*Rule]bool{rTop: true}
	_, m := g.Speculate(xs, WithPs(ps))

	dvLeaf := NewDerivation(rLeaf, Nonterminal("A"), Terminal("b"))
	dvTop := NewDerivation(rTop, Nonterminal("S"), dvLeaf, Terminal("a"))

	mapped := m.Map(dvTop).(*Derivation)
	require.Len(t, mapped.Children, 2)

	o, ok := mapped.Children[0].(*Derivation)
	require.True(t, ok)
	assert.Equal(t, Frozen{X: Nonterminal("A")}, o.X)

	slashNode, ok := mapped.Children[1].(*Derivation)
	require.True(t, ok)
	assert.Equal(t, Slash{Y: Nonterminal("S"), Z: Nonterminal("A")}, slashNode.X)
	require.Len(t, slashNode.Children, 2)
	assert.Equal(t, Terminal("a"), slashNode.Children[1])
}
