package wcfg

import "fmt"

// Symbol is the tagged sum of every symbol kind a grammar can mention:
// Terminal, Nonterminal, and the invented Slash and Frozen symbols.
// Transformation sites dispatch on it with a type switch rather than
// runtime isinstance checks.
type Symbol interface {
	fmt.Stringer
	symbol()
}

// Terminal is a leaf symbol of the grammar's alphabet V.
type Terminal string

func (Terminal) symbol()          {}
func (t Terminal) String() string { return string(t) }

// Nonterminal is an ordinary (non-invented) grammar nonterminal.
type Nonterminal string

func (Nonterminal) symbol()          {}
func (n Nonterminal) String() string { return string(n) }

// Slash represents "a Y missing a Z at its left edge", invented by the
// speculation and GLCT transforms. ID is the collision escape hatch: 0
// by default, bumped only when the zero-ID name already exists in the
// parent grammar.
type Slash struct {
	Y, Z Symbol
	ID   int
}

func (Slash) symbol() {}

func (s Slash) String() string {
	if s.ID == 0 {
		return fmt.Sprintf("%s/%s", s.Y, s.Z)
	}
	return fmt.Sprintf("%s/%s@%d", s.Y, s.Z, s.ID)
}

// Frozen represents "an X whose topmost production falls outside Ps". A
// terminal's frozen form is itself (frozen() never wraps a Terminal).
type Frozen struct {
	X  Symbol
	ID int
}

func (Frozen) symbol() {}

func (f Frozen) String() string {
	if f.ID == 0 {
		return fmt.Sprintf("~%s", f.X)
	}
	return fmt.Sprintf("~%s@%d", f.X, f.ID)
}

// IsTerminal reports whether s is a Terminal.
func IsTerminal(s Symbol) bool {
	_, ok := s.(Terminal)
	return ok
}

// IsNonterminal reports whether s is not a Terminal (i.e. Nonterminal,
// Slash, or Frozen).
func IsNonterminal(s Symbol) bool {
	return !IsTerminal(s)
}

// idAllocator is an explicit, per-grammar fresh-symbol counter threaded
// through transformations via Grammar.Spawn, so that derived grammars
// keep allocating names downstream of their ancestors without colliding.
type idAllocator struct {
	counter int
}

func newIDAllocator() *idAllocator {
	return &idAllocator{}
}

// fresh returns a new Nonterminal named "prefix@n" for an increasing n.
func (a *idAllocator) fresh(prefix string) Nonterminal {
	a.counter++
	return Nonterminal(fmt.Sprintf("%s@%d", prefix, a.counter))
}
