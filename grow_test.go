package tupl_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/Dragoteryx/tupl"
)

func TestAppend(t *testing.T) {
	qt.Assert(t, qt.Equals(tupl.Append0(tupl.NewT0(), "x"), tupl.NewT1("x")))
	qt.Assert(t, qt.Equals(tupl.Append1(tupl.NewT1("x"), 1), tupl.NewT2("x", 1)))
	qt.Assert(t, qt.Equals(tupl.Append2(tupl.NewT2(2, 3), 4), tupl.NewT3(2, 3, 4)))
}

func TestPrepend(t *testing.T) {
	qt.Assert(t, qt.Equals(tupl.Prepend0(tupl.NewT0(), "x"), tupl.NewT1("x")))
	qt.Assert(t, qt.Equals(tupl.Prepend1(tupl.NewT1(1), "x"), tupl.NewT2("x", 1)))
	qt.Assert(t, qt.Equals(tupl.Prepend3(tupl.NewT3(2, 3, 4), 1), tupl.NewT4(1, 2, 3, 4)))
}

// Growing and then shrinking from the same end returns the original
// tuple and value, whatever the arity.
func TestAppendTruncateTailRoundTrip(t *testing.T) {
	one := tupl.NewT1("only")
	rest1, last1 := tupl.Append1(one, 2).TruncateTail()
	qt.Assert(t, qt.Equals(rest1, one))
	qt.Assert(t, qt.Equals(last1, 2))

	pair := tupl.NewT2(1, "two")
	rest2, last2 := tupl.Append2(pair, 3.5).TruncateTail()
	qt.Assert(t, qt.Equals(rest2, pair))
	qt.Assert(t, qt.Equals(last2, 3.5))

	empty, only := tupl.Append0(tupl.NewT0(), "x").TruncateTail()
	qt.Assert(t, qt.Equals(empty, tupl.NewT0()))
	qt.Assert(t, qt.Equals(only, "x"))
}

func TestPrependTruncateHeadRoundTrip(t *testing.T) {
	one := tupl.NewT1("only")
	first1, rest1 := tupl.Prepend1(one, 0).TruncateHead()
	qt.Assert(t, qt.Equals(first1, 0))
	qt.Assert(t, qt.Equals(rest1, one))

	trip := tupl.NewT3(1, 2, 3)
	first3, rest3 := tupl.Prepend3(trip, "zero").TruncateHead()
	qt.Assert(t, qt.Equals(first3, "zero"))
	qt.Assert(t, qt.Equals(rest3, trip))
}

// The worked sequence from the package documentation: grow a pair at
// both ends, then peel the ends back off.
func TestGrowShrinkSequence(t *testing.T) {
	pair := tupl.NewT2(2, 3)
	grown := tupl.Append2(pair, 4)
	qt.Assert(t, qt.Equals(grown, tupl.NewT3(2, 3, 4)))

	full := tupl.Prepend3(grown, 1)
	qt.Assert(t, qt.Equals(full, tupl.NewT4(1, 2, 3, 4)))

	head, rest := full.TruncateHead()
	qt.Assert(t, qt.Equals(head, 1))
	qt.Assert(t, qt.Equals(rest, grown))

	lead, tail := grown.TruncateTail()
	qt.Assert(t, qt.Equals(lead, pair))
	qt.Assert(t, qt.Equals(tail, 4))
}

// Append49 is the last growth step: it lands exactly on the MaxArity
// ceiling, where no further AppendN or PrependN is defined.
func TestGrowToCeiling(t *testing.T) {
	almost := tupl.NewT49(
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
		11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
		21, 22, 23, 24, 25, 26, 27, 28, 29, 30,
		31, 32, 33, 34, 35, 36, 37, 38, 39, 40,
		41, 42, 43, 44, 45, 46, 47, 48, 49,
	)
	qt.Assert(t, qt.Equals(almost.Len(), tupl.MaxArity-1))

	full := tupl.Append49(almost, 50)
	qt.Assert(t, qt.Equals(full.Len(), tupl.MaxArity))
	qt.Assert(t, qt.HasLen(full.Slice(), tupl.MaxArity))
	qt.Assert(t, qt.Equals(full.Head(), 1))
	qt.Assert(t, qt.Equals(full.Tail(), 50))

	rest, last := full.TruncateTail()
	qt.Assert(t, qt.Equals(rest, almost))
	qt.Assert(t, qt.Equals(last, 50))
}
