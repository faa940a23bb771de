package semiring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// weight is the Value implementation for the non-negative real (PCFG
// probability) semiring.
type weight float64

func (w weight) Plus(other Value) Value {
	return weight(float64(w) + float64(other.(weight)))
}

func (w weight) Times(other Value) Value {
	return weight(float64(w) * float64(other.(weight)))
}

func (w weight) Equal(other Value) bool {
	return float64(w) == float64(other.(weight))
}

func (w weight) String() string {
	return fmt.Sprintf("%.6g", float64(w))
}

// Weight returns the real-semiring Value wrapping w. w must be >= 0.
func Weight(w float64) Value {
	return weight(w)
}

// AsFloat64 unwraps a real-semiring Value back into a float64, panicking
// if v does not belong to the Real semiring.
func AsFloat64(v Value) float64 {
	return float64(v.(weight))
}

// realSemiring is the non-negative real number semiring (⊕ = +, ⊗ = ×)
// used for PCFG-style probabilities and general non-negative weights.
type realSemiring struct{}

// Real is the reference non-negative-real semiring.
var Real Semiring = realSemiring{}

func (realSemiring) Zero() Value { return weight(0) }
func (realSemiring) One() Value  { return weight(1) }

// Star computes the Kleene closure 1/(1-x) for x in [0,1); for x >= 1 the
// geometric series diverges and we return +Inf as a documented best-effort
// result rather than an error.
func (realSemiring) Star(x Value) Value {
	w := float64(x.(weight))
	if w >= 1 {
		return weight(math.Inf(1))
	}
	return weight(1.0 / (1.0 - w))
}

func (realSemiring) Metric(a, b Value) float64 {
	return math.Abs(float64(a.(weight)) - float64(b.(weight)))
}

func (realSemiring) Name() string { return "real" }

func (realSemiring) Parse(s string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "real semiring: bad weight %q", s)
	}
	return weight(f), nil
}

var _ Parser = realSemiring{}
