package wcfg

import (
	"strings"

	"github.com/wcfg-go/wcfg/semiring"
	"github.com/wcfg-go/wcfg/wcfgerr"
)

// Grammar is an immutable-after-construction weighted context-free
// grammar G = (R, S, V, N, rules). Grammars are value-ish: every
// transformation consumes a Grammar and returns a newly populated one;
// a Grammar is only mutated while it is being built up via Add.
type Grammar struct {
	R semiring.Semiring
	S Symbol
	V map[Symbol]bool // terminal alphabet encountered so far
	N map[Symbol]bool // nonterminal set: S plus every head seen

	Rules []*Rule

	ids *idAllocator

	rhsIndex   map[Symbol][]*Rule
	indexDirty bool

	debug bool
}

// New creates an empty grammar over semiring r with start symbol s.
func New(r semiring.Semiring, s Symbol) *Grammar {
	return &Grammar{
		R:          r,
		S:          s,
		V:          map[Symbol]bool{},
		N:          map[Symbol]bool{s: true},
		ids:        newIDAllocator(),
		indexDirty: true,
	}
}

// DebugMode enables verbose logging for this grammar's transforms.
func (g *Grammar) DebugMode() { g.debug = true }

// IsTerminal reports whether s belongs to this grammar's alphabet by tag.
func (g *Grammar) IsTerminal(s Symbol) bool { return IsTerminal(s) }

// IsNonterminal reports whether s is not a Terminal.
func (g *Grammar) IsNonterminal(s Symbol) bool { return IsNonterminal(s) }

// Add appends a new rule (w, head, body...) to the grammar, unless w is
// zero: zero-weight rules are never stored. Panics with ErrInvalidRule
// if head is a Terminal.
func (g *Grammar) Add(w semiring.Value, head Symbol, body ...Symbol) *Rule {
	if w == nil {
		w = g.R.Zero()
	}
	if w.Equal(g.R.Zero()) {
		return nil
	}
	invariant(!IsTerminal(head), wcfgerr.InvalidRule("rule head %v is a terminal", head))

	g.N[head] = true
	for _, b := range body {
		if IsTerminal(b) {
			g.V[b] = true
		}
	}

	r := &Rule{Weight: w, Head: head, Body: append([]Symbol(nil), body...)}
	g.Rules = append(g.Rules, r)
	g.indexDirty = true
	return r
}

// SpawnOption configures a derived grammar created by Spawn.
type SpawnOption func(*Grammar)

// WithStart overrides the start symbol of a spawned grammar.
func WithStart(s Symbol) SpawnOption {
	return func(g *Grammar) { g.S = s }
}

// WithVocabulary overrides the terminal alphabet of a spawned grammar.
func WithVocabulary(v map[Symbol]bool) SpawnOption {
	return func(g *Grammar) {
		g.V = make(map[Symbol]bool, len(v))
		for s := range v {
			g.V[s] = true
		}
	}
}

// Spawn creates an empty grammar inheriting this grammar's semiring,
// start symbol, and vocabulary (overridable via options), and sharing its
// fresh-symbol allocator so names invented downstream never collide with
// names invented upstream.
func (g *Grammar) Spawn(opts ...SpawnOption) *Grammar {
	ng := &Grammar{
		R:          g.R,
		S:          g.S,
		V:          map[Symbol]bool{},
		N:          map[Symbol]bool{},
		ids:        g.ids,
		indexDirty: true,
	}
	for s := range g.V {
		ng.V[s] = true
	}
	for _, o := range opts {
		o(ng)
	}
	ng.N[ng.S] = true
	return ng
}

// ensureIndex lazily (re)builds the head->rules index, invalidated by Add.
func (g *Grammar) ensureIndex() {
	if !g.indexDirty {
		return
	}
	g.rhsIndex = make(map[Symbol][]*Rule, len(g.N))
	for _, r := range g.Rules {
		g.rhsIndex[r.Head] = append(g.rhsIndex[r.Head], r)
	}
	g.indexDirty = false
}

// RHS returns the rules whose head is x, in insertion order.
func (g *Grammar) RHS(x Symbol) []*Rule {
	g.ensureIndex()
	return g.rhsIndex[x]
}

// Size is the sum of 1+len(body) over all rules.
func (g *Grammar) Size() int {
	n := 0
	for _, r := range g.Rules {
		n += 1 + len(r.Body)
	}
	return n
}

// NumRules returns the number of rules in the grammar.
func (g *Grammar) NumRules() int { return len(g.Rules) }

// String renders every rule, one per line, in the grammar text dialect.
func (g *Grammar) String() string {
	lines := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}

// Rename returns a grammar whose symbols are renamed by f (terminals are
// left untouched).
func (g *Grammar) Rename(f func(Nonterminal) Nonterminal) *Grammar {
	rename := func(s Symbol) Symbol {
		if IsTerminal(s) {
			return s
		}
		if nt, ok := s.(Nonterminal); ok {
			return f(nt)
		}
		return s
	}
	newStart := rename(g.S)
	ng := g.Spawn(WithStart(newStart))
	for _, r := range g.Rules {
		body := make([]Symbol, len(r.Body))
		for i, s := range r.Body {
			body[i] = rename(s)
		}
		ng.Add(r.Weight, rename(r.Head), body...)
	}
	return ng
}
