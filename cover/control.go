package cover

// Control is the value a Sink returns after seeing one cover: either
// "keep going" or "stop now, and hand this value back to the caller of
// Search".
type Control[B any] struct {
	shouldBreak bool
	value       B
}

// Continue reports that the search should keep exploring.
func Continue[B any]() Control[B] {
	return Control[B]{}
}

// Break reports that the search should stop immediately and return v
// to the caller of Search.
func Break[B any](v B) Control[B] {
	return Control[B]{shouldBreak: true, value: v}
}

// ShouldBreak reports whether this Control carries a break request.
func (c Control[B]) ShouldBreak() bool {
	return c.shouldBreak
}

// Value returns the value attached to a Break. The zero value of B if
// this Control is a Continue.
func (c Control[B]) Value() B {
	return c.value
}

// Sink receives each canonical cover the search discovers, in
// discovery order (increasing k, then whatever order the driver's
// branching explores within one k). Returning Break from a Sink stops
// the search immediately; Search's own return value is whatever the
// first break-returning Sink call produced, or Continue[B]() if the
// whole search space was exhausted without one.
type Sink[B any] func(BicliqueCover) Control[B]
