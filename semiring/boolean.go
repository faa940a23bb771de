package semiring

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// boolValue is the Value implementation for the Boolean semiring.
type boolValue bool

func (b boolValue) Plus(other Value) Value {
	return boolValue(bool(b) || bool(other.(boolValue)))
}

func (b boolValue) Times(other Value) Value {
	return boolValue(bool(b) && bool(other.(boolValue)))
}

func (b boolValue) Equal(other Value) bool {
	return bool(b) == bool(other.(boolValue))
}

func (b boolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Bool returns the Boolean semiring Value wrapping b.
func Bool(b bool) Value {
	return boolValue(b)
}

// AsBool unwraps a Boolean-semiring Value back into a bool, panicking if v
// does not belong to the Boolean semiring.
func AsBool(v Value) bool {
	return bool(v.(boolValue))
}

// booleanSemiring recognizes a language (weight true/false) rather than
// weighting it. Star is idempotent: star(x) == one regardless of x, since
// one ⊕ x ⊕ x⊗x ⊕ ... is true whenever one is true.
type booleanSemiring struct{}

// Boolean is the reference Boolean semiring: used to test plain
// grammar membership rather than weight it.
var Boolean Semiring = booleanSemiring{}

func (booleanSemiring) Zero() Value { return boolValue(false) }
func (booleanSemiring) One() Value  { return boolValue(true) }

func (booleanSemiring) Star(Value) Value { return boolValue(true) }

func (booleanSemiring) Metric(a, b Value) float64 {
	if a.Equal(b) {
		return 0
	}
	return 1
}

func (booleanSemiring) Name() string { return "boolean" }

func (booleanSemiring) Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, errors.Wrapf(err, "boolean semiring: bad weight %q", s)
	}
	return boolValue(b), nil
}

var _ Parser = booleanSemiring{}
