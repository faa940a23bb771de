package semiring

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// tropicalValue is the Value implementation for the (min, +) tropical
// semiring, useful for shortest-derivation / Viterbi-cost style weights.
type tropicalValue float64

func (t tropicalValue) Plus(other Value) Value {
	o := float64(other.(tropicalValue))
	if float64(t) < o {
		return t
	}
	return tropicalValue(o)
}

func (t tropicalValue) Times(other Value) Value {
	return tropicalValue(float64(t) + float64(other.(tropicalValue)))
}

func (t tropicalValue) Equal(other Value) bool {
	return float64(t) == float64(other.(tropicalValue))
}

func (t tropicalValue) String() string {
	return fmt.Sprintf("%.6g", float64(t))
}

// Tropical returns the tropical-semiring Value wrapping cost.
func Tropical(cost float64) Value {
	return tropicalValue(cost)
}

type tropicalSemiring struct{}

// TropicalSemiring is the (min, +) semiring: zero = +Inf, one = 0.
var TropicalSemiring Semiring = tropicalSemiring{}

func (tropicalSemiring) Zero() Value { return tropicalValue(math.Inf(1)) }
func (tropicalSemiring) One() Value  { return tropicalValue(0) }

// Star(x) = one when x >= 0 (no negative cycle to exploit: the empty path
// is always cheapest); -Inf when x < 0, signalling an unbounded closure.
func (tropicalSemiring) Star(x Value) Value {
	v := float64(x.(tropicalValue))
	if v >= 0 {
		return tropicalValue(0)
	}
	return tropicalValue(math.Inf(-1))
}

func (tropicalSemiring) Metric(a, b Value) float64 {
	return math.Abs(float64(a.(tropicalValue)) - float64(b.(tropicalValue)))
}

func (tropicalSemiring) Name() string { return "tropical" }

func (tropicalSemiring) Parse(s string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "tropical semiring: bad weight %q", s)
	}
	return tropicalValue(f), nil
}

var _ Parser = tropicalSemiring{}
