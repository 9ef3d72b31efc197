package multicast

// Combine concatenates the elementary callbacks of every non-nil operand, in
// traversal order, into one new list. The nil list is the identity element:
// combining nil with anything yields the other operand's callbacks, and
// combining only nil operands yields nil.
//
// Combine never fails and never mutates its operands; the result has a fresh
// backing array even for a single operand.
func Combine[T any](lists ...List[T]) List[T] {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	if n == 0 {
		return nil
	}
	out := make(List[T], 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
