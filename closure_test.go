package wcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wcfg-go/wcfg/semiring"
)

// TestClosureLehmannNumericExample checks W = {(1,1): 1/2} over the
// reals, star(x) = 1/(1-x); the fixpoint equation should yield V[1,1] = 2.
func TestClosureLehmannNumericExample(t *testing.T) {
	one := Nonterminal("1")
	nodes := []Symbol{one}

	W := semiring.NewChart[EdgeKey](semiring.Real)
	W.Set(EdgeKey{one, one}, semiring.Weight(0.5))

	V := Closure(semiring.Real, nodes, W)
	got := semiring.AsFloat64(V.Get(EdgeKey{one, one}))
	assert.InDelta(t, 2.0, got, 1e-9)
}

// TestClosureFixpointEquation checks the general fixpoint equation
// V[i,k] = (one if i==k else zero) ⊕ Σ_j V[i,j] ⊗ W[j,k].
func TestClosureFixpointEquation(t *testing.T) {
	a, b, c := Nonterminal("A"), Nonterminal("B"), Nonterminal("C")
	nodes := []Symbol{a, b, c}

	W := semiring.NewChart[EdgeKey](semiring.Boolean)
	W.Set(EdgeKey{a, b}, semiring.Bool(true))
	W.Set(EdgeKey{b, c}, semiring.Bool(true))

	V := Closure(semiring.Boolean, nodes, W)
	assert.True(t, semiring.AsBool(V.Get(EdgeKey{a, c})))
	assert.True(t, semiring.AsBool(V.Get(EdgeKey{a, a})))
	assert.False(t, semiring.AsBool(V.Get(EdgeKey{c, a})))

	for _, i := range nodes {
		for _, k := range nodes {
			lhs := V.Get(EdgeKey{i, k})
			rhs := semiring.Boolean.Zero()
			if i == k {
				rhs = semiring.Boolean.One()
			}
			for _, j := range nodes {
				rhs = rhs.Plus(V.Get(EdgeKey{i, j}).Times(W.Get(EdgeKey{j, k})))
			}
			assert.True(t, lhs.Equal(rhs))
		}
	}
}
