package semiring

import "testing"

func TestChartGetAbsentIsZero(t *testing.T) {
	c := NewChart[string](Real)
	if !c.Get("missing").Equal(Real.Zero()) {
		t.Fatalf("expected zero for an absent key")
	}
}

func TestChartSetZeroRemoves(t *testing.T) {
	c := NewChart[string](Real)
	c.Set("x", Weight(3))
	if c.Len() != 1 {
		t.Fatalf("expected one entry, got %d", c.Len())
	}
	c.Set("x", Weight(0))
	if c.Len() != 0 {
		t.Fatalf("setting zero should delete the entry, got len %d", c.Len())
	}
}

func TestChartIncrementAccumulates(t *testing.T) {
	c := NewChart[string](Real)
	c.Increment("x", Weight(2))
	got := c.Increment("x", Weight(3))
	if AsFloat64(got) != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if AsFloat64(c.Get("x")) != 5 {
		t.Fatalf("expected stored value 5, got %v", c.Get("x"))
	}
}

func TestChartPopDrainsAllEntries(t *testing.T) {
	c := NewChart[string](Real)
	c.Set("a", Weight(1))
	c.Set("b", Weight(2))

	seen := map[string]bool{}
	for {
		k, _, ok := c.Pop()
		if !ok {
			break
		}
		seen[k] = true
	}
	if len(seen) != 2 || !seen["a"] || !seen["b"] {
		t.Fatalf("expected to drain a and b, got %v", seen)
	}
	if c.Len() != 0 {
		t.Fatalf("chart should be empty after full drain")
	}
}

func TestChartRangeStopsEarly(t *testing.T) {
	c := NewChart[string](Real)
	c.Set("a", Weight(1))
	c.Set("b", Weight(2))

	count := 0
	c.Range(func(string, Value) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("expected Range to stop after the first entry, ran %d times", count)
	}
}
