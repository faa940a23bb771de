package wcfg

import (
	"fmt"
	"strings"

	"github.com/wcfg-go/wcfg/semiring"
)

// Rule is a weighted production (w, head, body). Its identity is
// (head, body); Grammar.Add does not merge duplicates, so two rules with
// the same identity are stored separately.
type Rule struct {
	Weight semiring.Value
	Head   Symbol
	Body   []Symbol
}

// IsNullary reports whether the rule has an empty body.
func (r *Rule) IsNullary() bool { return len(r.Body) == 0 }

// IsUnary reports whether the rule has a single body symbol.
func (r *Rule) IsUnary() bool { return len(r.Body) == 1 }

// IsBinary reports whether the rule has exactly two body symbols.
func (r *Rule) IsBinary() bool { return len(r.Body) == 2 }

// key renders the rule's (head, body) identity as a comparable string;
// Body is joined into a string since Go slices are not comparable.
func (r *Rule) key() string {
	parts := make([]string, len(r.Body)+1)
	parts[0] = r.Head.String()
	for i, s := range r.Body {
		parts[i+1] = s.String()
	}
	return strings.Join(parts, "\x1f")
}

// String renders the rule as "w: head -> body...".
func (r *Rule) String() string {
	body := make([]string, len(r.Body))
	for i, s := range r.Body {
		body[i] = s.String()
	}
	w := "?"
	if r.Weight != nil {
		w = r.Weight.String()
	}
	return fmt.Sprintf("%s: %s -> %s", w, r.Head, strings.Join(body, " "))
}
