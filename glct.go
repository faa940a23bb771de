package wcfg

import "github.com/wcfg-go/wcfg/wcfgerr"

// GLCTOption configures Grammar.LeftCornerGeneralized; it is the same
// option type as Speculate's, since GLCT threads Ps/filter/id straight
// through to the speculation it composes with a spine transpose.
type GLCTOption = SpecOption

// LeftCornerGeneralized performs the generalized left-corner
// transformation (GLCT; Opedal et al., 2023): speculation with the slash
// symbol transposed to the trailing position of rule bodies, restricted
// (when filter=true, the default) by a useful-symbol analysis computed
// over the left-corner graph of Ps.
func (g *Grammar) LeftCornerGeneralized(xs map[Symbol]bool, ps map[*Rule]bool, opts ...GLCTOption) *Grammar {
	ng, _ := g.glct(xs, ps, opts...)
	return ng
}

// LeftCornerGeneralizedMapping is LeftCornerGeneralized plus the
// derivation mapping Φ_G = Ψ∘Φ_S.
func (g *Grammar) LeftCornerGeneralizedMapping(xs map[Symbol]bool, ps map[*Rule]bool, opts ...GLCTOption) (*Grammar, *GLCTMapping) {
	return g.glct(xs, ps, opts...)
}

// LeftCornerSelective is the selective left-corner transformation of
// Johnson & Roark (2000) with their top-down factoring optimization:
// LeftCornerGeneralized with Xs = V ∪ N.
func (g *Grammar) LeftCornerSelective(ps map[*Rule]bool, opts ...GLCTOption) *Grammar {
	return g.LeftCornerGeneralized(g.symbolUniverse(), ps, opts...)
}

// GLCTMapping carries the derivation mapping Φ_G that
// LeftCornerGeneralizedMapping returns alongside its transformed grammar.
type GLCTMapping struct {
	spec *SpeculationMapping
	sf   *symbolFactory
}

func (g *Grammar) glct(xsIn map[Symbol]bool, psIn map[*Rule]bool, opts ...GLCTOption) (*Grammar, *GLCTMapping) {
	o := SpeculationOptions{Ps: psIn, Filter: true, ID: 0}
	if o.Ps == nil {
		o.Ps = AllRules(g)
	}
	for _, f := range opts {
		f(&o)
	}
	xs := xsIn
	for r := range o.Ps {
		invariant(len(r.Body) > 0, wcfgerr.Precondition("lc_generalized: Ps rule %v has an empty body", r))
	}

	sf := &symbolFactory{parent: g, id: o.ID}
	ng := g.Spawn()
	one := g.R.One()

	var retained, usefulNum, usefulMid map[Symbol]bool
	var numGivenDen func(Symbol) map[Symbol]bool

	if o.Filter {
		retained = map[Symbol]bool{g.S: true}
		for _, p := range g.Rules {
			start := 0
			if o.Ps[p] {
				start = 1
			}
			for _, X := range p.Body[start:] {
				if g.IsNonterminal(X) {
					retained[X] = true
				}
			}
		}

		psRules := make([]*Rule, 0, len(o.Ps))
		for r := range o.Ps {
			psRules = append(psRules, r)
		}
		den2num := transitiveClosureReversed(g.allSymbols(), psRules)

		numGivenDen = func(den Symbol) map[Symbol]bool {
			out := map[Symbol]bool{}
			for num := range den2num[den] {
				if retained[num] {
					out[num] = true
				}
			}
			return out
		}

		usefulNum = map[Symbol]bool{}
		for den := range xs {
			for num := range numGivenDen(den) {
				usefulNum[num] = true
			}
		}

		usefulMid = map[Symbol]bool{}
		for den := range xs {
			for mid := range den2num[den] {
				if len(numGivenDen(mid)) > 0 {
					usefulMid[mid] = true
				}
			}
		}
	} else {
		retained = g.nonterminalSet()
		universe := g.symbolUniverse()
		nset := g.nonterminalSet()
		numGivenDen = func(Symbol) map[Symbol]bool { return nset }
		usefulNum = universe
		usefulMid = universe
	}

	for X := range usefulNum {
		ng.Add(one, sf.slash(X, X))
	}

	for _, p := range g.Rules {
		head, body := p.Head, p.Body
		if !o.Ps[p] {
			ng.Add(p.Weight, sf.frozen(head), body...)
			continue
		}
		if usefulMid[body[0]] {
			for Y := range numGivenDen(body[0]) {
				newHead := sf.slash(Y, body[0])
				newBody := make([]Symbol, 0, len(body))
				newBody = append(newBody, body[1:]...)
				newBody = append(newBody, sf.slash(Y, head))
				ng.Add(p.Weight, newHead, newBody...)
			}
		}
		if !xs[body[0]] {
			newBody := append([]Symbol{sf.frozen(body[0])}, body[1:]...)
			ng.Add(p.Weight, sf.frozen(head), newBody...)
		}
	}

	for Y := range retained {
		if !xs[Y] {
			ng.Add(one, Y, sf.frozen(Y))
		}
	}
	for X := range xs {
		for Y := range numGivenDen(X) {
			ng.Add(one, Y, sf.frozen(X), sf.slash(Y, X))
		}
	}

	_, spec := g.Speculate(xs, WithPs(o.Ps), WithFilter(o.Filter), WithID(o.ID))
	return ng, &GLCTMapping{spec: spec, sf: sf}
}

// Map implements the GLCT derivation mapping Φ_G = Ψ∘Φ_S: speculate,
// then transpose the resulting slash spine so the
// continuation symbol lands at the end of each body instead of the
// start, matching how LeftCornerGeneralized itself builds bodies.
func (m *GLCTMapping) Map(d interface{}) interface{} {
	return m.transpose(m.spec.Map(d))
}

func (m *GLCTMapping) transpose(d interface{}) interface{} {
	dv, ok := d.(*Derivation)
	if !ok {
		return d
	}
	slashSym, isSlash := dv.X.(Slash)
	if !isSlash {
		children := make([]interface{}, len(dv.Children))
		for i, y := range dv.Children {
			children[i] = m.transpose(y)
		}
		return Tree(dv.X, children...)
	}

	var spine []Symbol
	var rests [][]interface{}
	curr := dv
	for len(curr.Children) != 0 {
		firstDeriv := curr.Children[0].(*Derivation)
		spine = append(spine, firstDeriv.X)
		rest := make([]interface{}, len(curr.Children)-1)
		for i, y := range curr.Children[1:] {
			rest[i] = m.transpose(y)
		}
		rests = append(rests, rest)
		curr = firstDeriv
	}

	num := slashSym.Y
	newTree := Tree(m.sf.slash(num, num))
	for i, s := range spine {
		sSlash := s.(Slash)
		args := append(append([]interface{}{}, rests[i]...), newTree)
		newTree = Tree(m.sf.slash(num, sSlash.Y), args...)
	}
	return newTree
}
