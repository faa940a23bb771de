// Package semiring provides the weighted-algebra abstraction the rest of
// wcfg is parameterized over: a commutative-addition, (possibly
// non-commutative) multiplication algebraic structure with zero/one
// identities, a Kleene/Lehmann closure operator, and a convergence metric.
package semiring

import "fmt"

// Value is a single element of some Semiring. Concrete semirings provide
// their own Value implementation (boolValue, weight, tropicalValue, ...);
// operations panic if asked to combine values from different semirings.
type Value interface {
	fmt.Stringer

	// Plus is the semiring's ⊕ (addition).
	Plus(other Value) Value

	// Times is the semiring's ⊗ (multiplication). Not assumed commutative.
	Times(other Value) Value

	// Equal reports whether two values of the same semiring are equal.
	Equal(other Value) bool
}

// Semiring is the typeclass-like interface every transform in this module
// is parameterized over.
type Semiring interface {
	// Zero is the ⊕-identity and ⊗-annihilator.
	Zero() Value

	// One is the ⊗-identity.
	One() Value

	// Star computes the Kleene/Lehmann closure one ⊕ x ⊕ x⊗x ⊕ ... for a
	// single value, used by the Lehmann closure (wcfg.Closure) and by
	// the Boolean/real reference semirings' own tests.
	Star(x Value) Value

	// Metric is a semimetric (symmetric, zero iff equal) used by the
	// agenda fixpoint solver to detect convergence.
	Metric(a, b Value) float64

	// Name identifies the semiring, mostly for debug logging.
	Name() string
}

// Parser is implemented by semirings that can read a Value back out of the
// grammar text format's "<weight>:" field.
type Parser interface {
	Parse(s string) (Value, error)
}
