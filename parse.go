package wcfg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/wcfg-go/wcfg/semiring"
	"github.com/wcfg-go/wcfg/wcfgerr"
)

// ParseConfig configures Parse, the grammar-text-format reader.
type ParseConfig struct {
	// Semiring the rule weights are parsed into. Defaults to
	// semiring.Boolean.
	Semiring semiring.Semiring

	// Start names the start symbol. Defaults to "S".
	Start Nonterminal

	// IsTerminal classifies a body token as a terminal or nonterminal.
	// Defaults to DefaultIsTerminal.
	IsTerminal func(token string) bool
}

// DefaultIsTerminal treats a token as a terminal when it does not start
// with an uppercase letter.
func DefaultIsTerminal(token string) bool {
	for _, r := range token {
		return !unicode.IsUpper(r)
	}
	return true
}

// AngleBracketIsTerminal treats a token as a nonterminal only when it is
// wrapped in <angle brackets>.
func AngleBracketIsTerminal(token string) bool {
	return !(len(token) >= 2 && token[0] == '<' && token[len(token)-1] == '>')
}

// Parse reads a grammar in a line-oriented text format: one rule per
// line, "<weight>: <head> -> <body...>" ("->"/"→" interchangeable),
// blank lines and "#"/";"-prefixed comments ignored. A line may also omit
// the leading "<weight>:" and instead list "|"-separated alternative
// bodies each with an optional trailing ";<weight>".
func Parse(r io.Reader, cfg ParseConfig) (*Grammar, error) {
	if cfg.Semiring == nil {
		cfg.Semiring = semiring.Boolean
	}
	if cfg.IsTerminal == nil {
		cfg.IsTerminal = DefaultIsTerminal
	}
	start := cfg.Start
	if start == "" {
		start = Nonterminal("S")
	}

	g := New(cfg.Semiring, start)

	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if err := parseLine(g, cfg, line); err != nil {
			return nil, wcfgerr.BadInput(row, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return g, nil
}

func parseLine(g *Grammar, cfg ParseConfig, line string) error {
	line = strings.ReplaceAll(line, "→", "->")

	idx := strings.Index(line, "->")
	if idx < 0 {
		return fmt.Errorf("missing '->' (or '→') in rule line")
	}
	head, rest := line[:idx], line[idx+2:]

	weightText, headText := "1", strings.TrimSpace(head)
	if cidx := strings.Index(headText, ":"); cidx >= 0 {
		weightText = strings.TrimSpace(headText[:cidx])
		headText = strings.TrimSpace(headText[cidx+1:])
	}
	if headText == "" {
		return fmt.Errorf("empty head symbol")
	}
	if cfg.IsTerminal(headText) {
		return fmt.Errorf("%q: terminal symbol used as rule head", headText)
	}
	headSym := Nonterminal(headText)

	for _, alt := range strings.Split(rest, "|") {
		alt = strings.TrimSpace(alt)
		w := weightText
		if sidx := strings.LastIndex(alt, ";"); sidx >= 0 {
			w = strings.TrimSpace(alt[sidx+1:])
			alt = strings.TrimSpace(alt[:sidx])
		}

		var body []Symbol
		for _, tok := range strings.Fields(alt) {
			if cfg.IsTerminal(tok) {
				body = append(body, Terminal(tok))
			} else {
				body = append(body, Nonterminal(tok))
			}
		}

		val, err := parseWeight(cfg.Semiring, w)
		if err != nil {
			return err
		}
		g.Add(val, headSym, body...)
	}
	return nil
}

func parseWeight(sr semiring.Semiring, text string) (semiring.Value, error) {
	if p, ok := sr.(semiring.Parser); ok {
		return p.Parse(text)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, err
	}
	return semiring.Weight(f), nil
}
