package tupl_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/Dragoteryx/tupl"
)

func TestLen(t *testing.T) {
	qt.Assert(t, qt.Equals(tupl.NewT0().Len(), 0))
	qt.Assert(t, qt.Equals(tupl.NewT1("x").Len(), 1))
	qt.Assert(t, qt.Equals(tupl.NewT3(1, "two", 3.0).Len(), 3))
}

func TestHeadTail(t *testing.T) {
	trip := tupl.NewT3("first", 2, true)
	qt.Assert(t, qt.Equals(trip.Head(), "first"))
	qt.Assert(t, qt.Equals(trip.Tail(), true))

	one := tupl.NewT1(42)
	qt.Assert(t, qt.Equals(one.Head(), 42))
	qt.Assert(t, qt.Equals(one.Tail(), 42))
}

func TestHeadPtrTailPtr(t *testing.T) {
	pair := tupl.NewT2(1, 2)
	*pair.HeadPtr() = 2
	*pair.TailPtr() = 3
	qt.Assert(t, qt.Equals(pair, tupl.NewT2(2, 3)))
}

func TestTruncateHead(t *testing.T) {
	head, rest := tupl.NewT4(1, 2, 3, 4).TruncateHead()
	qt.Assert(t, qt.Equals(head, 1))
	qt.Assert(t, qt.Equals(rest, tupl.NewT3(2, 3, 4)))

	only, empty := tupl.NewT1("solo").TruncateHead()
	qt.Assert(t, qt.Equals(only, "solo"))
	qt.Assert(t, qt.Equals(empty, tupl.NewT0()))
}

func TestTruncateTail(t *testing.T) {
	rest, tail := tupl.NewT3(2, 3, 4).TruncateTail()
	qt.Assert(t, qt.Equals(rest, tupl.NewT2(2, 3)))
	qt.Assert(t, qt.Equals(tail, 4))

	empty, only := tupl.NewT1("solo").TruncateTail()
	qt.Assert(t, qt.Equals(empty, tupl.NewT0()))
	qt.Assert(t, qt.Equals(only, "solo"))
}

func TestSlice(t *testing.T) {
	qt.Assert(t, qt.IsNil(tupl.NewT0().Slice()))
	qt.Assert(t, qt.DeepEquals(tupl.NewT3(1, "two", 3.5).Slice(), []any{1, "two", 3.5}))
}

func TestString(t *testing.T) {
	qt.Assert(t, qt.Equals(tupl.NewT0().String(), "()"))
	qt.Assert(t, qt.Equals(tupl.NewT1(1).String(), "(1)"))
	trip := tupl.NewT3(1, "two", 3.5)
	qt.Assert(t, qt.Equals(trip.String(), "(1, two, 3.5)"))
	qt.Assert(t, qt.Equals(fmt.Sprint(trip), "(1, two, 3.5)"))
}

func TestIsEmpty(t *testing.T) {
	qt.Assert(t, qt.IsTrue(tupl.IsEmpty(tupl.NewT0())))
	qt.Assert(t, qt.IsFalse(tupl.IsEmpty(tupl.NewT1(0))))
	qt.Assert(t, qt.IsFalse(tupl.IsEmpty(tupl.NewT2("a", "b"))))
}

func TestTupleInterface(t *testing.T) {
	tuples := []tupl.Tuple{
		tupl.NewT0(),
		tupl.NewT1(1),
		tupl.NewT2(1, "two"),
		tupl.NewT3(1, "two", 3.5),
	}
	for i, tuple := range tuples {
		qt.Assert(t, qt.Equals(tuple.Len(), i))
		qt.Assert(t, qt.HasLen(tuple.Slice(), i))
	}
}

func TestNonEmptyInterface(t *testing.T) {
	var one tupl.NonEmpty[string, string, tupl.T0, tupl.T0] = tupl.NewT1("solo")
	qt.Assert(t, qt.Equals(one.Head(), "solo"))
	qt.Assert(t, qt.Equals(one.Tail(), "solo"))

	var ne tupl.NonEmpty[int, bool, tupl.T2[string, bool], tupl.T2[int, string]] = tupl.NewT3(1, "two", true)
	qt.Assert(t, qt.Equals(ne.Head(), 1))
	qt.Assert(t, qt.Equals(ne.Tail(), true))

	head, rest := ne.TruncateHead()
	qt.Assert(t, qt.Equals(head, 1))
	qt.Assert(t, qt.Equals(rest, tupl.NewT2("two", true)))

	lead, tail := ne.TruncateTail()
	qt.Assert(t, qt.Equals(lead, tupl.NewT2(1, "two")))
	qt.Assert(t, qt.Equals(tail, true))
}

func TestMaxArity(t *testing.T) {
	qt.Assert(t, qt.Equals(tupl.MaxArity, 50))
}
