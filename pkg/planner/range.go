package planner

// Range is one instance's dual-handle slot selection.
type Range struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// WithCurrent moves the current handle. The result is clamped so the current
// handle never drops below minSlots nor passes the target handle.
func (r Range) WithCurrent(v, minSlots int) Range {
	r.Current = clamp(v, minSlots, r.Target)
	return r
}

// WithTarget moves the target handle. The result is clamped so the target
// handle never exceeds maxSlots nor falls below the current handle.
func (r Range) WithTarget(v, maxSlots int) Range {
	r.Target = clamp(v, r.Current, maxSlots)
	return r
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
