package tupl

import (
	"fmt"
	"strings"
)

// Tuple is implemented by every tuple type, T0 through T50.
type Tuple interface {
	fmt.Stringer

	// Len returns the number of elements in the tuple.
	Len() int
	// Slice returns the tuple's elements as a []any slice.
	Slice() []any
}

// NonEmpty is implemented by every tuple type with at least one
// element. H and T are the types of the first and last elements;
// RestHead and RestTail are the tuple types left after removing the
// first or last element. For example, T3[A, B, C] implements
// NonEmpty[A, C, T2[B, C], T2[A, B]].
//
// T0 satisfies no instantiation of NonEmpty, so code constrained by it
// cannot be handed an empty tuple.
type NonEmpty[H, T, RestHead, RestTail any] interface {
	Tuple

	// Head returns the first element of the tuple.
	Head() H
	// Tail returns the last element of the tuple.
	Tail() T
	// TruncateHead splits the tuple into its first element and the
	// tuple of the remaining elements.
	TruncateHead() (H, RestHead)
	// TruncateTail splits the tuple into the tuple of its leading
	// elements and its last element.
	TruncateTail() (RestTail, T)
}

// IsEmpty reports whether t holds no elements.
func IsEmpty(t Tuple) bool {
	return t.Len() == 0
}

// formatTuple renders elements the way they are written: "(1, two)".
func formatTuple(elems []any) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(')')
	return b.String()
}
