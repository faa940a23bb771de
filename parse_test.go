package wcfg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wcfg-go/wcfg/semiring"
)

func TestParseWeightHeadArrowBodyDialect(t *testing.T) {
	text := "1: S -> a S b\n1: S ->\n"
	g, err := Parse(strings.NewReader(text), ParseConfig{})
	require.NoError(t, err)
	assert.Equal(t, Nonterminal("S"), g.S)
	assert.Equal(t, 2, g.NumRules())

	cnf, err := g.CNF()
	require.NoError(t, err)
	got, err := cnf.Accept([]Terminal{Terminal("a"), Terminal("b")})
	require.NoError(t, err)
	assert.True(t, semiring.AsBool(got))
}

func TestParsePipeAlternativesWithWeightOverride(t *testing.T) {
	text := "S -> a A | b A;2\nA -> c\n"
	g, err := Parse(strings.NewReader(text), ParseConfig{Semiring: semiring.Real})
	require.NoError(t, err)
	require.Equal(t, 3, g.NumRules())

	var weights []float64
	for _, r := range g.RHS(Nonterminal("S")) {
		weights = append(weights, semiring.AsFloat64(r.Weight))
	}
	assert.ElementsMatch(t, []float64{1, 2}, weights)
}

func TestParseSkipsBlankLinesAndComments(t *testing.T) {
	text := "# a comment\n\n; another comment\n1: S -> a\n"
	g, err := Parse(strings.NewReader(text), ParseConfig{})
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumRules())
}

func TestParseRejectsTerminalHead(t *testing.T) {
	_, err := Parse(strings.NewReader("1: a -> b\n"), ParseConfig{})
	assert.Error(t, err)
}

func TestDefaultIsTerminal(t *testing.T) {
	assert.True(t, DefaultIsTerminal("a"))
	assert.False(t, DefaultIsTerminal("S"))
}

func TestAngleBracketIsTerminal(t *testing.T) {
	assert.False(t, AngleBracketIsTerminal("<S>"))
	assert.True(t, AngleBracketIsTerminal("a"))
}
