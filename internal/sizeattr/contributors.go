package sizeattr

// Contributors maps a hierarchical key (see buildKey) to the number of
// bytes of compiled code attributed to it.
type Contributors map[string]uint64

// Extend merges other into c, summing values on key collision.
func (c Contributors) Extend(other Contributors) {
	for key, size := range other {
		c[key] += size
	}
}

// Total sums every value in the map.
func (c Contributors) Total() (sum uint64) {
	for _, size := range c {
		sum += size
	}
	return
}
