package analysis

// extremum tracks a running maximum under an explicit comparison key.
// Only candidates with a positive key qualify, and a strictly greater key is
// required to displace the current best, so ties keep the first candidate in
// input order. One tracker serves longest duration, highest calories and the
// per-sport longest-distance records alike.
type extremum[T any] struct {
	best T
	key  float64
	ok   bool
}

func (e *extremum[T]) consider(v T, key float64) {
	if key <= 0 {
		return
	}
	if !e.ok || key > e.key {
		e.best = v
		e.key = key
		e.ok = true
	}
}

// value returns a copy of the best candidate, or nil when nothing qualified.
func (e *extremum[T]) value() *T {
	if !e.ok {
		return nil
	}
	v := e.best
	return &v
}
