package wcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "a", Terminal("a").String())
	assert.Equal(t, "A", Nonterminal("A").String())

	s := Slash{Y: Nonterminal("A"), Z: Nonterminal("B")}
	assert.Equal(t, "A/B", s.String())
	s.ID = 2
	assert.Equal(t, "A/B@2", s.String())

	f := Frozen{X: Nonterminal("A")}
	assert.Equal(t, "~A", f.String())
	f.ID = 3
	assert.Equal(t, "~A@3", f.String())
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(Terminal("a")))
	assert.False(t, IsTerminal(Nonterminal("A")))
	assert.False(t, IsTerminal(Slash{Y: Nonterminal("A"), Z: Nonterminal("A")}))
	assert.False(t, IsTerminal(Frozen{X: Nonterminal("A")}))
	assert.True(t, IsNonterminal(Nonterminal("A")))
	assert.False(t, IsNonterminal(Terminal("a")))
}

func TestIDAllocatorFreshIsUnique(t *testing.T) {
	a := newIDAllocator()
	first := a.fresh("x")
	second := a.fresh("x")
	assert.NotEqual(t, first, second)
}

func TestSlashAsMapKey(t *testing.T) {
	set := map[Symbol]bool{}
	set[Slash{Y: Nonterminal("A"), Z: Nonterminal("B")}] = true
	assert.True(t, set[Slash{Y: Nonterminal("A"), Z: Nonterminal("B")}])
	assert.False(t, set[Slash{Y: Nonterminal("A"), Z: Nonterminal("C")}])
}
