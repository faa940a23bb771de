package wcfg

import (
	"fmt"
	"strings"

	"github.com/wcfg-go/wcfg/semiring"
)

// Derivation is a rooted tree of rule applications: (rule, head-symbol,
// children...). Children are either *Derivation or a bare Terminal leaf.
type Derivation struct {
	Rule     *Rule
	X        Symbol
	Children []interface{} // *Derivation or Terminal
}

// NewDerivation builds a derivation rooted at x via rule r, with the given
// children (each a *Derivation or a Terminal).
func NewDerivation(r *Rule, x Symbol, children ...interface{}) *Derivation {
	return &Derivation{Rule: r, X: x, Children: children}
}

// Tree builds a derivation with a synthetic rule of weight nil, used
// purely as structural scaffolding by the speculation/GLCT derivation
// mappings; its weight is never consulted.
func Tree(x Symbol, ys ...interface{}) *Derivation {
	body := make([]Symbol, len(ys))
	for i, y := range ys {
		body[i] = treeLabel(y)
	}
	r := &Rule{Weight: nil, Head: x, Body: body}
	return &Derivation{Rule: r, X: x, Children: ys}
}

func treeLabel(y interface{}) Symbol {
	if d, ok := y.(*Derivation); ok {
		return d.X
	}
	return y.(Symbol)
}

// Weight computes the semiring product (bottom-up) of the rule weight and
// every child derivation's weight. A synthetic scaffolding tree
// (Rule.Weight == nil) has no weight: Weight panics on one with a child
// derivation and returns nil for one whose children are all terminals.
func (d *Derivation) Weight() semiring.Value {
	w := d.Rule.Weight
	for _, y := range d.Children {
		if cd, ok := y.(*Derivation); ok {
			w = w.Times(cd.Weight())
		}
	}
	return w
}

// Yield flattens the derivation's leaves into a terminal string.
func (d *Derivation) Yield() []Terminal {
	var out []Terminal
	for _, y := range d.Children {
		switch v := y.(type) {
		case *Derivation:
			out = append(out, v.Yield()...)
		case Terminal:
			out = append(out, v)
		}
	}
	return out
}

// Equal compares two derivations ignoring the originating rule, only
// symbol and children matter. Derivations built from isomorphic trees
// but produced by different rule IDs still collate as equal.
func (d *Derivation) Equal(other *Derivation) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.X != other.X || len(d.Children) != len(other.Children) {
		return false
	}
	for i := range d.Children {
		switch av := d.Children[i].(type) {
		case *Derivation:
			bv, ok := other.Children[i].(*Derivation)
			if !ok || !av.Equal(bv) {
				return false
			}
		case Terminal:
			bv, ok := other.Children[i].(Terminal)
			if !ok || av != bv {
				return false
			}
		default:
			if d.Children[i] != other.Children[i] {
				return false
			}
		}
	}
	return true
}

// String renders the derivation as "(x child1 child2 ...)".
func (d *Derivation) String() string {
	if d == nil {
		return "<nil>"
	}
	parts := make([]string, len(d.Children))
	for i, y := range d.Children {
		switch v := y.(type) {
		case *Derivation:
			parts[i] = v.String()
		case fmt.Stringer:
			parts[i] = v.String()
		default:
			parts[i] = fmt.Sprintf("%v", v)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("(%s)", d.X)
	}
	return fmt.Sprintf("(%s %s)", d.X, strings.Join(parts, " "))
}
