package wcfg

import "github.com/wcfg-go/wcfg/semiring"

// Derivations lazily enumerates every derivation rooted at x with height
// at most maxHeight, sending each to the returned channel as it is
// constructed.
func (g *Grammar) Derivations(x Symbol, maxHeight int) <-chan *Derivation {
	out := make(chan *Derivation)
	go func() {
		defer close(out)
		g.enumerate(x, maxHeight, out)
	}()
	return out
}

func (g *Grammar) enumerate(x Symbol, maxHeight int, out chan<- *Derivation) {
	if maxHeight <= 0 || g.IsTerminal(x) {
		return
	}
	for _, r := range g.RHS(x) {
		if r.IsNullary() {
			out <- NewDerivation(r, x)
			continue
		}
		g.enumerateBody(r, 0, nil, maxHeight-1, out)
	}
}

// enumerateBody recursively expands r.Body[pos:], accumulating children,
// emitting one completed derivation per way of expanding every position.
func (g *Grammar) enumerateBody(r *Rule, pos int, children []interface{}, maxHeight int, out chan<- *Derivation) {
	if pos == len(r.Body) {
		out <- NewDerivation(r, r.Head, children...)
		return
	}
	sym := r.Body[pos]
	if g.IsTerminal(sym) {
		g.enumerateBody(r, pos+1, append(children, sym), maxHeight, out)
		return
	}

	sub := make(chan *Derivation)
	go func() {
		defer close(sub)
		g.enumerate(sym, maxHeight, sub)
	}()
	for d := range sub {
		next := make([]interface{}, len(children), len(children)+1)
		copy(next, children)
		next = append(next, d)
		g.enumerateBody(r, pos+1, next, maxHeight, out)
	}
}

// Language returns, for every yield string of a derivation of the start
// symbol with height at most depth, the semiring sum of the weights of
// all such derivations.
func (g *Grammar) Language(depth int) map[string]semiring.Value {
	out := map[string]semiring.Value{}
	for d := range g.Derivations(g.S, depth) {
		y := yieldString(d.Yield())
		w := d.Weight()
		if cur, ok := out[y]; ok {
			out[y] = cur.Plus(w)
		} else {
			out[y] = w
		}
	}
	return out
}

// DerivationsOf lazily enumerates every derivation of the start symbol
// with height at most maxHeight whose yield equals s.
func (g *Grammar) DerivationsOf(s []Terminal, maxHeight int) <-chan *Derivation {
	out := make(chan *Derivation)
	go func() {
		defer close(out)
		target := yieldString(s)
		for d := range g.Derivations(g.S, maxHeight) {
			if yieldString(d.Yield()) == target {
				out <- d
			}
		}
	}()
	return out
}

func yieldString(ts []Terminal) string {
	b := make([]byte, 0, len(ts))
	for _, t := range ts {
		b = append(b, []byte(string(t))...)
	}
	return string(b)
}
