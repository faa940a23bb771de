package semiring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// countValue is the Value implementation for the counting semiring
// (non-negative integers, used to count derivations/ambiguity rather than
// weigh them).
type countValue float64

func (c countValue) Plus(other Value) Value {
	return countValue(float64(c) + float64(other.(countValue)))
}

func (c countValue) Times(other Value) Value {
	return countValue(float64(c) * float64(other.(countValue)))
}

func (c countValue) Equal(other Value) bool {
	return float64(c) == float64(other.(countValue))
}

func (c countValue) String() string {
	return fmt.Sprintf("%g", float64(c))
}

// Count returns the counting-semiring Value wrapping n.
func Count(n float64) Value {
	return countValue(n)
}

type countingSemiring struct{}

// Counting is the non-negative-integer semiring used to count derivations
// (⊕ = +, ⊗ = ×, same shape as Real but kept distinct so callers cannot
// accidentally mix counts with probabilities).
var Counting Semiring = countingSemiring{}

func (countingSemiring) Zero() Value { return countValue(0) }
func (countingSemiring) One() Value  { return countValue(1) }

func (countingSemiring) Star(x Value) Value {
	n := float64(x.(countValue))
	if n >= 1 {
		return countValue(math.Inf(1))
	}
	return countValue(1.0 / (1.0 - n))
}

func (countingSemiring) Metric(a, b Value) float64 {
	return math.Abs(float64(a.(countValue)) - float64(b.(countValue)))
}

func (countingSemiring) Name() string { return "counting" }

func (countingSemiring) Parse(s string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "counting semiring: bad weight %q", s)
	}
	return countValue(f), nil
}

var _ Parser = countingSemiring{}
