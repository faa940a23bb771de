package wcfg

import "github.com/wcfg-go/wcfg/semiring"

// EdgeKey indexes a square chart over a symbol set: W[{i,k}] is the weight
// of the single edge i->k, and Closure's result is the weight of every
// path i~>k.
type EdgeKey struct {
	I, K Symbol
}

// Closure computes Lehmann's (1977) weighted reflexive-transitive closure
// of chart W over node set nodes, pivoting on R.Star to collapse
// self-loops for an arbitrary semiring instead of relying on (min, +)'s
// idempotence.
//
// U[i,k] accumulates path weight via at most |nodes| pivots; after pivot j,
// U[i,k] sums every i~>k path whose interior nodes are drawn from the
// first j pivots. R.Star(U[j,j]) folds in arbitrarily many loops through j
// itself before continuing i through j to k.
func Closure(R semiring.Semiring, nodes []Symbol, W *semiring.Chart[EdgeKey]) *semiring.Chart[EdgeKey] {
	U := semiring.NewChart[EdgeKey](R)
	for _, i := range nodes {
		for _, k := range nodes {
			U.Set(EdgeKey{i, k}, W.Get(EdgeKey{i, k}))
		}
	}

	for _, j := range nodes {
		V := semiring.NewChart[EdgeKey](R)
		star := R.Star(U.Get(EdgeKey{j, j}))
		for _, i := range nodes {
			uij := U.Get(EdgeKey{i, j})
			for _, k := range nodes {
				uik := U.Get(EdgeKey{i, k})
				ujk := U.Get(EdgeKey{j, k})
				V.Set(EdgeKey{i, k}, uik.Plus(uij.Times(star).Times(ujk)))
			}
		}
		U = V
	}

	for _, i := range nodes {
		U.Increment(EdgeKey{i, i}, R.One())
	}
	return U
}
