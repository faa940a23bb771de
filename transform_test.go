package wcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcfg-go/wcfg/semiring"
)

func TestTrimDropsUnproductiveAndUnreachable(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Terminal("a"))
	g.Add(semiring.Bool(true), Nonterminal("Dead"), Nonterminal("Dead"))
	g.Add(semiring.Bool(true), Nonterminal("Unreached"), Terminal("a"))

	h := g.Trim(false)
	for _, r := range h.Rules {
		assert.NotEqual(t, Nonterminal("Dead"), r.Head)
		assert.NotEqual(t, Nonterminal("Unreached"), r.Head)
	}
	assert.Equal(t, 1, h.NumRules())
}

func TestSeparateStartMakesStartUnreferenced(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Nonterminal("S"), Terminal("a"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Terminal("a"))

	h := g.SeparateStart()
	for _, r := range h.Rules {
		for _, b := range r.Body {
			assert.NotEqual(t, h.S, b)
		}
	}
}

func TestSeparateStartIdempotentUpToRenaming(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Nonterminal("S"), Terminal("a"))

	once := g.SeparateStart()
	twice := once.SeparateStart()
	assert.Equal(t, once.NumRules(), twice.NumRules())
	assert.Equal(t, once.S, twice.S)
}

func TestBinarizeShortensBodies(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Terminal("a"), Terminal("b"), Terminal("c"), Terminal("d"))

	h := g.Binarize()
	for _, r := range h.Rules {
		assert.LessOrEqual(t, len(r.Body), 2)
	}
}

func TestSeparateTerminalsIsolatesTerminals(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Terminal("a"), Nonterminal("B"))
	g.Add(semiring.Bool(true), Nonterminal("B"), Terminal("b"))

	h := g.SeparateTerminals()
	for _, r := range h.Rules {
		if len(r.Body) > 1 {
			for _, s := range r.Body {
				assert.False(t, h.IsTerminal(s))
			}
		}
	}
}

func TestUnfoldInlinesNonterminal(t *testing.T) {
	g := New(semiring.Boolean, Nonterminal("S"))
	g.Add(semiring.Bool(true), Nonterminal("S"), Nonterminal("A"), Terminal("c"))
	g.Add(semiring.Bool(true), Nonterminal("A"), Terminal("a"))
	g.Add(semiring.Bool(true), Nonterminal("A"), Terminal("b"))

	h := g.Unfold(0, 0)
	require.Equal(t, 4, h.NumRules())

	found := map[string]bool{}
	for _, r := range h.Rules {
		if r.Head == Nonterminal("S") {
			found[r.String()] = true
		}
	}
	assert.Len(t, found, 2)
}
