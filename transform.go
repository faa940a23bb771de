package wcfg

// Trim returns the grammar restricted to useful symbols: first the
// bottom-up productive set (symbols that can yield some terminal string),
// then, unless bottomUpOnly, the top-down set reachable from S restricted
// to that productive set. Rules referencing a dropped symbol are dropped
// with it.
func (g *Grammar) Trim(bottomUpOnly bool) *Grammar {
	productive := map[Symbol]bool{}
	for t := range g.V {
		productive[t] = true
	}
	for _, r := range g.Rules {
		if r.IsNullary() {
			productive[r.Head] = true
		}
	}

	outgoing := map[Symbol][]*Rule{}
	for _, r := range g.Rules {
		for _, b := range r.Body {
			outgoing[b] = append(outgoing[b], r)
		}
	}

	agenda := make([]Symbol, 0, len(productive))
	for s := range productive {
		agenda = append(agenda, s)
	}
	for len(agenda) > 0 {
		x := agenda[len(agenda)-1]
		agenda = agenda[:len(agenda)-1]
		for _, r := range outgoing[x] {
			if productive[r.Head] || !allIn(r.Body, productive) {
				continue
			}
			productive[r.Head] = true
			agenda = append(agenda, r.Head)
		}
	}

	if bottomUpOnly {
		return g.restrictTo(productive)
	}

	incoming := map[Symbol][]*Rule{}
	for _, r := range g.Rules {
		incoming[r.Head] = append(incoming[r.Head], r)
	}

	reachable := map[Symbol]bool{}
	if productive[g.S] {
		reachable[g.S] = true
		agenda = append(agenda[:0], g.S)
	}
	for len(agenda) > 0 {
		x := agenda[len(agenda)-1]
		agenda = agenda[:len(agenda)-1]
		for _, r := range incoming[x] {
			for _, b := range r.Body {
				if reachable[b] || !productive[b] {
					continue
				}
				reachable[b] = true
				agenda = append(agenda, b)
			}
		}
	}

	return g.restrictTo(reachable)
}

// Cotrim runs only Trim's bottom-up (productivity) phase.
func (g *Grammar) Cotrim() *Grammar {
	return g.Trim(true)
}

func allIn(body []Symbol, set map[Symbol]bool) bool {
	for _, b := range body {
		if !set[b] {
			return false
		}
	}
	return true
}

func (g *Grammar) restrictTo(useful map[Symbol]bool) *Grammar {
	ng := g.Spawn()
	for _, r := range g.Rules {
		if !useful[r.Head] || !allIn(r.Body, useful) {
			continue
		}
		ng.Add(r.Weight, r.Head, r.Body...)
	}
	return ng
}

// SeparateStart returns a grammar whose start symbol never appears in a
// rule body, inventing a fresh start symbol and a weight-one bridge rule
// when the original start symbol is recursive.
func (g *Grammar) SeparateStart() *Grammar {
	appears := false
outer:
	for _, r := range g.Rules {
		for _, b := range r.Body {
			if b == g.S {
				appears = true
				break outer
			}
		}
	}
	if !appears {
		return g
	}

	newStart := g.ids.fresh(symbolText(g.S))
	ng := g.Spawn(WithStart(newStart))
	ng.Add(g.R.One(), newStart, g.S)
	for _, r := range g.Rules {
		ng.Add(r.Weight, r.Head, r.Body...)
	}
	return ng
}

// SeparateTerminals returns a grammar where every terminal is produced by
// its own preterminal rule, so no rule body mixes terminals and
// nonterminals except the unary preterminal rules themselves.
func (g *Grammar) SeparateTerminals() *Grammar {
	ng := g.Spawn()
	preterminal := map[Symbol]Symbol{}
	preterminalOf := func(t Symbol) Symbol {
		if p, ok := preterminal[t]; ok {
			return p
		}
		p := ng.ids.fresh(symbolText(t))
		ng.Add(g.R.One(), p, t)
		preterminal[t] = p
		return p
	}

	for _, r := range g.Rules {
		if r.IsUnary() && g.IsTerminal(r.Body[0]) {
			ng.Add(r.Weight, r.Head, r.Body...)
			continue
		}
		body := make([]Symbol, len(r.Body))
		for i, y := range r.Body {
			if g.IsTerminal(y) {
				body[i] = preterminalOf(y)
			} else {
				body[i] = y
			}
		}
		ng.Add(r.Weight, r.Head, body...)
	}
	return ng
}

// Binarize returns a grammar where every rule body has at most two
// symbols, peeling the leading pair of a wider body into a fresh
// nonterminal until it fits.
func (g *Grammar) Binarize() *Grammar {
	ng := g.Spawn()
	stack := make([]*Rule, len(g.Rules))
	copy(stack, g.Rules)

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(r.Body) <= 2 {
			ng.Add(r.Weight, r.Head, r.Body...)
			continue
		}
		stack = append(stack, ng.fold(r)...)
	}
	return ng
}

// fold peels the first two body symbols of r into a fresh binary rule,
// returning that rule plus the replacement rule for r's remainder.
func (g *Grammar) fold(r *Rule) []*Rule {
	head := g.ids.fresh("x")
	part := &Rule{Weight: g.R.One(), Head: head, Body: append([]Symbol(nil), r.Body[:2]...)}
	rest := append([]Symbol{head}, r.Body[2:]...)
	top := &Rule{Weight: r.Weight, Head: r.Head, Body: rest}
	return []*Rule{part, top}
}

// Unfold replaces rule i by inlining every production of the nonterminal
// at body position k, the local rewrite other transforms compose from.
func (g *Grammar) Unfold(i, k int) *Grammar {
	s := g.Rules[i]
	ng := g.Spawn()
	for j, r := range g.Rules {
		if j == i {
			continue
		}
		ng.Add(r.Weight, r.Head, r.Body...)
	}
	for _, r := range g.RHS(s.Body[k]) {
		body := make([]Symbol, 0, len(s.Body)-1+len(r.Body))
		body = append(body, s.Body[:k]...)
		body = append(body, r.Body...)
		body = append(body, s.Body[k+1:]...)
		ng.Add(s.Weight.Times(r.Weight), s.Head, body...)
	}
	return ng
}

func symbolText(s Symbol) string {
	switch v := s.(type) {
	case Nonterminal:
		return string(v)
	case Terminal:
		return string(v)
	default:
		return s.String()
	}
}
