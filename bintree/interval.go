// Package bintree: Interval is the 1-D value type every tree key and every
// stored item is described by.
package bintree

// Interval is an ordered pair (Min, Max) of reals with Min <= Max.
// The zero value is the degenerate interval [0, 0].
// Interval is an immutable value type: all operations return new values.
type Interval struct {
	Min, Max float64
}

// NewInterval returns the interval covering min and max,
// swapping the bounds if they arrive out of order.
func NewInterval(min, max float64) Interval {
	if min > max {
		min, max = max, min
	}

	return Interval{Min: min, Max: max}
}

// Width returns Max - Min. It is never negative.
func (i Interval) Width() float64 { return i.Max - i.Min }

// Centre returns the midpoint (Min+Max)/2.
func (i Interval) Centre() float64 { return (i.Min + i.Max) / 2 }

// Overlaps reports whether i and o share at least one point.
func (i Interval) Overlaps(o Interval) bool {
	return !(i.Max < o.Min || o.Max < i.Min)
}

// Contains reports whether o lies wholly within i.
func (i Interval) Contains(o Interval) bool {
	return i.Min <= o.Min && i.Max >= o.Max
}

// ContainsPoint reports whether x lies within i (bounds included).
func (i Interval) ContainsPoint(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// ExpandedToInclude returns the smallest interval covering both i and o.
func (i Interval) ExpandedToInclude(o Interval) Interval {
	if o.Min < i.Min {
		i.Min = o.Min
	}
	if o.Max > i.Max {
		i.Max = o.Max
	}

	return i
}
