package wcfg

import "github.com/wcfg-go/wcfg/wcfgerr"

// CNF assembles separate_terminals, binarize, nullaryremove, unaryremove
// and trim into a single Chomsky-normal-form grammar, applied in that
// order.
func (g *Grammar) CNF() (*Grammar, error) {
	h := g.SeparateTerminals()
	h = h.Binarize()
	h, err := h.NullaryRemove()
	if err != nil {
		return nil, err
	}
	h = h.UnaryRemove()
	h = h.Trim(false)
	if !h.InCNF() {
		return nil, wcfgerr.Precondition("cnf: result grammar failed the CNF invariant check")
	}
	return h, nil
}

// InCNF reports whether g is in Chomsky normal form: every rule is
// either nullary with head S, unary with a terminal body, or binary with
// two non-start nonterminal bodies.
func (g *Grammar) InCNF() bool {
	for _, r := range g.Rules {
		switch {
		case r.IsNullary():
			if r.Head != g.S {
				return false
			}
		case r.IsUnary():
			if !g.IsTerminal(r.Body[0]) {
				return false
			}
		case r.IsBinary():
			if !g.IsNonterminal(r.Body[0]) || r.Body[0] == g.S {
				return false
			}
			if !g.IsNonterminal(r.Body[1]) || r.Body[1] == g.S {
				return false
			}
		default:
			return false
		}
	}
	return true
}
