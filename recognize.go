package wcfg

import (
	"github.com/wcfg-go/wcfg/semiring"
	"github.com/wcfg-go/wcfg/wcfgerr"
)

// cnfParts indexes a CNF grammar's rules by shape: nullary, unary
// (keyed by the terminal it produces), and binary, so Accept's chart
// fill can look each up directly instead of re-scanning all rules.
type cnfParts struct {
	nullary  semiring.Value
	terminal map[Terminal][]*Rule
	binary   []*Rule
}

func (g *Grammar) cnfParts() (*cnfParts, error) {
	if !g.InCNF() {
		return nil, wcfgerr.Precondition("accept: grammar is not in CNF; call CNF() first")
	}
	parts := &cnfParts{nullary: g.R.Zero(), terminal: map[Terminal][]*Rule{}}
	for _, r := range g.Rules {
		switch {
		case r.IsNullary():
			parts.nullary = parts.nullary.Plus(r.Weight)
		case r.IsUnary():
			t := r.Body[0].(Terminal)
			parts.terminal[t] = append(parts.terminal[t], r)
		default:
			parts.binary = append(parts.binary, r)
		}
	}
	return parts, nil
}

// Accept computes the total weight the grammar assigns to input,
// converting to CNF first if necessary and then filling a table-by-span
// chart with a CYK-style sweep, generalized from a best-derivation
// Viterbi table to a full semiring tree-sum. Building the actual
// parse/derivation tree back out is left to a caller-supplied
// backpointer scheme -- this only answers "how much weight", not
// "which tree".
func (g *Grammar) Accept(input []Terminal) (semiring.Value, error) {
	cnf := g
	if !g.InCNF() {
		var err error
		cnf, err = g.CNF()
		if err != nil {
			return nil, err
		}
	}
	parts, err := cnf.cnfParts()
	if err != nil {
		return nil, err
	}

	n := len(input)
	R := cnf.R

	type cell struct{ start, end int }
	charts := map[cell]*semiring.Chart[Symbol]{}
	get := func(c cell) *semiring.Chart[Symbol] {
		ch, ok := charts[c]
		if !ok {
			ch = semiring.NewChart[Symbol](R)
			charts[c] = ch
		}
		return ch
	}

	for i := 0; i <= n; i++ {
		get(cell{i, i}).Increment(cnf.S, parts.nullary)
	}
	for i := 0; i < n; i++ {
		for _, r := range parts.terminal[input[i]] {
			get(cell{i, i + 1}).Increment(r.Head, r.Weight)
		}
	}

	for span := 2; span <= n; span++ {
		for i := 0; i+span <= n; i++ {
			k := i + span
			out := get(cell{i, k})
			for j := i + 1; j < k; j++ {
				left := get(cell{i, j})
				right := get(cell{j, k})
				for _, r := range parts.binary {
					lv := left.Get(r.Body[0])
					if lv.Equal(R.Zero()) {
						continue
					}
					rv := right.Get(r.Body[1])
					if rv.Equal(R.Zero()) {
						continue
					}
					out.Increment(r.Head, r.Weight.Times(lv).Times(rv))
				}
			}
		}
	}

	return get(cell{0, n}).Get(cnf.S), nil
}
