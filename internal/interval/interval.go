// Package interval provides a closed interval over a cyclic ordered domain
// such as time of day or day of year.
package interval

// Point is a value of a cyclic ordered domain
type Point[T any] interface {
	comparable
	Before(other T) bool
}

// Rule is the closed interval [Start, End]. When End is before Start the
// interval wraps past the end of the domain, e.g. 23:00-01:00 or Dec 24-Jan 2.
type Rule[T Point[T]] struct {
	Start, End T
}

// New creates a Rule from start to end inclusive
func New[T Point[T]](start, end T) Rule[T] {
	return Rule[T]{Start: start, End: end}
}

// Contains reports whether v lies within the rule.
// A rule whose start equals its end holds that single value only.
func (r Rule[T]) Contains(v T) bool {
	switch {
	case r.Start == r.End:
		return v == r.Start
	case r.Wraps():
		return !v.Before(r.Start) || !r.End.Before(v)
	default:
		return !v.Before(r.Start) && !r.End.Before(v)
	}
}

// Wraps reports whether the rule crosses the end of the domain
func (r Rule[T]) Wraps() bool {
	return r.End.Before(r.Start)
}
