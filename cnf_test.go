package wcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcfg-go/wcfg/semiring"
)

// TestCNFRoundTrip builds 1:S->a S b, 1:S->. cnf(g) must accept "aabb"
// and "", reject "aab", and accept "ab".
func TestCNFRoundTrip(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Terminal("a"), Nonterminal("S"), Terminal("b"))
	g.Add(semiring.Bool(true), Nonterminal("S"))

	cnf, err := g.CNF()
	require.NoError(t, err)
	assert.True(t, cnf.InCNF())

	for _, tc := range []struct {
		input []Terminal
		want  bool
	}{
		{[]Terminal{Terminal("a"), Terminal("a"), Terminal("b"), Terminal("b")}, true},
		{nil, true},
		{[]Terminal{Terminal("a"), Terminal("b")}, true},
		{[]Terminal{Terminal("a"), Terminal("a"), Terminal("b")}, false},
	} {
		got, err := cnf.Accept(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, semiring.AsBool(got), "input=%v", tc.input)
	}
}

// TestAcceptConvertsToCNFImplicitly checks that Accept on a
// not-yet-CNF grammar converts internally rather than erroring.
func TestAcceptConvertsToCNFImplicitly(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Terminal("a"), Nonterminal("S"), Terminal("b"))
	g.Add(semiring.Bool(true), Nonterminal("S"))

	require.False(t, g.InCNF())
	got, err := g.Accept([]Terminal{Terminal("a"), Terminal("b")})
	require.NoError(t, err)
	assert.True(t, semiring.AsBool(got))
}
