package semiring

// Chart is a sparse mapping from K to Value that reads as Zero when a key
// is absent, and whose assignments that leave a value equal to Zero delete
// the entry instead of storing it.
type Chart[K comparable] struct {
	sr   Semiring
	vals map[K]Value
}

// NewChart creates an empty chart over semiring sr.
func NewChart[K comparable](sr Semiring) *Chart[K] {
	return &Chart[K]{sr: sr, vals: make(map[K]Value)}
}

// Get reads the value at k, returning sr.Zero() when absent.
func (c *Chart[K]) Get(k K) Value {
	if v, ok := c.vals[k]; ok {
		return v
	}
	return c.sr.Zero()
}

// Set stores v at k. A v equal to zero removes the entry.
func (c *Chart[K]) Set(k K, v Value) {
	if v.Equal(c.sr.Zero()) {
		delete(c.vals, k)
		return
	}
	c.vals[k] = v
}

// Increment performs chart[k] ⊕= v and returns the new value.
func (c *Chart[K]) Increment(k K, v Value) Value {
	nv := c.Get(k).Plus(v)
	c.Set(k, nv)
	return nv
}

// Len returns the number of non-zero entries.
func (c *Chart[K]) Len() int {
	return len(c.vals)
}

// Pop removes and returns an arbitrary non-zero entry, used by the agenda
// which processes updates in no particular order.
func (c *Chart[K]) Pop() (k K, v Value, ok bool) {
	for k, v := range c.vals {
		delete(c.vals, k)
		return k, v, true
	}
	return k, nil, false
}

// Range iterates over non-zero entries in unspecified order; it stops early
// if f returns false.
func (c *Chart[K]) Range(f func(K, Value) bool) {
	for k, v := range c.vals {
		if !f(k, v) {
			return
		}
	}
}

// Semiring returns the semiring this chart is defined over.
func (c *Chart[K]) Semiring() Semiring {
	return c.sr
}
