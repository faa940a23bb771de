package wcfg

import "github.com/wcfg-go/wcfg/wcfgerr"

// SpeculationOptions configures Grammar.Speculate and, via GLCTOption,
// Grammar.LeftCornerGeneralized.
type SpeculationOptions struct {
	Ps     map[*Rule]bool
	Filter bool
	ID     int
}

// SpecOption sets a field of SpeculationOptions.
type SpecOption func(*SpeculationOptions)

// WithPs restricts the transform to a subset of rules; the rest pass
// through frozen, untouched. Defaults to every rule in the grammar.
func WithPs(ps map[*Rule]bool) SpecOption { return func(o *SpeculationOptions) { o.Ps = ps } }

// WithFilter toggles the useful-symbol restriction; true by default.
func WithFilter(filter bool) SpecOption { return func(o *SpeculationOptions) { o.Filter = filter } }

// WithID sets the collision-escape ID threaded into invented Slash/Frozen
// symbol names.
func WithID(id int) SpecOption { return func(o *SpeculationOptions) { o.ID = id } }

func defaultSpecOptions(g *Grammar) SpeculationOptions {
	return SpeculationOptions{Ps: AllRules(g), Filter: true, ID: 0}
}

// AllRules returns every rule of g as a set: the default Ps for
// Speculate/LeftCornerGeneralized/LeftCornerSelective.
func AllRules(g *Grammar) map[*Rule]bool {
	out := make(map[*Rule]bool, len(g.Rules))
	for _, r := range g.Rules {
		out[r] = true
	}
	return out
}

// symbolFactory mints Slash/Frozen names, escaping to a non-zero ID (the
// WithID value, or 1 when that is 0) only when the zero-ID name already
// collides with a parent-grammar nonterminal.
type symbolFactory struct {
	parent *Grammar
	id     int
}

func (f *symbolFactory) slash(Y, Z Symbol) Symbol {
	s := Slash{Y: Y, Z: Z}
	if !f.parent.N[s] {
		return s
	}
	return Slash{Y: Y, Z: Z, ID: max(f.id, 1)}
}

func (f *symbolFactory) frozen(X Symbol) Symbol {
	if IsTerminal(X) {
		return X
	}
	s := Frozen{X: X}
	if !f.parent.N[s] {
		return s
	}
	return Frozen{X: X, ID: max(f.id, 1)}
}

// SpeculationMapping carries the derivation mapping Φ_S that Speculate
// returns alongside its transformed grammar.
type SpeculationMapping struct {
	parent *Grammar
	Xs     map[Symbol]bool
	Ps     map[*Rule]bool
	sf     *symbolFactory
}

// Speculate performs the speculation transformation (Opedal et al.,
// 2023): a value-preserving grammar transform inventing Slash/Frozen
// symbols that LeftCornerGeneralized composes with a slash-spine
// transpose to eliminate left recursion. Returns the speculated grammar
// and the derivation mapping Φ_S from parent derivations to
// speculated-grammar derivations.
func (g *Grammar) Speculate(xs map[Symbol]bool, opts ...SpecOption) (*Grammar, *SpeculationMapping) {
	o := defaultSpecOptions(g)
	for _, f := range opts {
		f(&o)
	}
	for r := range o.Ps {
		invariant(len(r.Body) > 0, wcfgerr.Precondition("speculate: Ps rule %v has an empty body", r))
	}

	sf := &symbolFactory{parent: g, id: o.ID}
	ng := g.Spawn()
	one := g.R.One()

	universe := xs
	if !o.Filter {
		universe = g.symbolUniverse()
	}

	for X := range universe {
		ng.Add(one, sf.slash(X, X))
	}

	for _, p := range g.Rules {
		if !o.Ps[p] {
			ng.Add(p.Weight, sf.frozen(p.Head), p.Body...)
			continue
		}
		for X := range universe {
			body := append([]Symbol{sf.slash(p.Body[0], X)}, p.Body[1:]...)
			ng.Add(p.Weight, sf.slash(p.Head, X), body...)
		}
		if !xs[p.Body[0]] {
			body := append([]Symbol{sf.frozen(p.Body[0])}, p.Body[1:]...)
			ng.Add(p.Weight, sf.frozen(p.Head), body...)
		}
	}

	for Y := range g.N {
		if !xs[Y] {
			ng.Add(one, Y, sf.frozen(Y))
		}
	}
	for Y := range g.N {
		for X := range xs {
			ng.Add(one, Y, sf.frozen(X), sf.slash(Y, X))
		}
	}

	return ng, &SpeculationMapping{parent: g, Xs: xs, Ps: o.Ps, sf: sf}
}

// Map implements the speculation derivation mapping Φ_S: given a
// derivation of the parent grammar, returns the corresponding
// derivation of the speculated grammar. Terminal leaves pass through
// unchanged.
func (m *SpeculationMapping) Map(d interface{}) interface{} {
	dv, ok := d.(*Derivation)
	if !ok {
		return d
	}

	if !m.Ps[dv.Rule] {
		rest := make([]interface{}, len(dv.Children))
		for i, y := range dv.Children {
			rest[i] = m.Map(y)
		}
		if m.Xs[dv.X] {
			return Tree(dv.X, Tree(m.sf.frozen(dv.X), rest...), Tree(m.sf.slash(dv.X, dv.X)))
		}
		return Tree(dv.X, Tree(m.sf.frozen(dv.X), rest...))
	}

	dd := m.Map(dv.Children[0])
	rest := make([]interface{}, len(dv.Children)-1)
	for i, y := range dv.Children[1:] {
		rest[i] = m.Map(y)
	}

	ddDeriv, isDeriv := dd.(*Derivation)
	if !isDeriv {
		oSym := dd.(Symbol)
		if m.Xs[oSym] {
			ddDeriv = Tree(oSym, dd, Tree(m.sf.slash(oSym, oSym)))
		} else {
			ddDeriv = Tree(oSym, dd)
		}
	}

	if len(ddDeriv.Children) == 1 {
		o := ddDeriv.Children[0]
		args := append([]interface{}{o}, rest...)
		if m.Xs[dv.X] {
			return Tree(dv.X, Tree(m.sf.frozen(dv.X), args...), Tree(m.sf.slash(dv.X, dv.X)))
		}
		return Tree(dv.X, Tree(m.sf.frozen(dv.X), args...))
	}

	o := ddDeriv.Children[0]
	s := ddDeriv.Children[1]
	name := slashPivotName(o)
	args := append([]interface{}{s}, rest...)
	return Tree(dv.X, o, Tree(m.sf.slash(dv.X, name), args...))
}

// slashPivotName extracts the symbol a spine step's outer Slash pivots
// on: a Frozen node's wrapped symbol, a Derivation's own label, or (for a
// bare terminal leaf) the leaf itself.
func slashPivotName(o interface{}) Symbol {
	if d, ok := o.(*Derivation); ok {
		if fr, ok := d.X.(Frozen); ok {
			return fr.X
		}
		return d.X
	}
	return o.(Symbol)
}
