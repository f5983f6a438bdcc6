package gen

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

func TestParamLetters(t *testing.T) {
	letters := paramLetters(maxNameable)
	qt.Assert(t, qt.HasLen(letters, 52))
	qt.Assert(t, qt.Equals(letters[0], "A"))
	qt.Assert(t, qt.Equals(letters[25], "Z"))
	qt.Assert(t, qt.Equals(letters[26], "AA"))
	qt.Assert(t, qt.Equals(letters[49], "AX"))
	qt.Assert(t, qt.Equals(letters[51], "AZ"))

	seen := make(map[string]bool)
	for _, l := range letters {
		qt.Assert(t, qt.IsFalse(seen[l]), qt.Commentf("duplicate letter %q", l))
		seen[l] = true
	}
}

func TestMakeArity(t *testing.T) {
	qt.Assert(t, qt.CmpEquals(makeArity(0), arityInfo{
		N:         0,
		Type:      "T0",
		TypeDoc:   "T0 is the empty tuple.",
		NewDoc:    "NewT0 returns the empty tuple.",
		Recv:      "T0",
		Literal:   "T0{}",
		SliceExpr: "nil",
		AssertVal: "T0{}",
	}))
	qt.Assert(t, qt.CmpEquals(makeArity(2), arityInfo{
		N:         2,
		Type:      "T2",
		TypeDoc:   "T2 holds 2 values.",
		NewDoc:    "NewT2 returns a tuple of the 2 given values.",
		Decl:      "[A, B any]",
		Use:       "[A, B]",
		Recv:      "T2[A, B]",
		Fields:    "\tA A\n\tB B",
		Args:      "a A, b B",
		Literal:   "T2[A, B]{a, b}",
		SliceExpr: "[]any{t.A, t.B}",
		AssertVal: "T2[int, int]{}",
	}))
}

func TestMakeNonEmpty(t *testing.T) {
	allow := cmp.AllowUnexported(nonEmptyInfo{})
	qt.Assert(t, qt.CmpEquals(makeNonEmpty(1), nonEmptyInfo{
		arityInfo:   makeArity(1),
		HeadType:    "A",
		TailType:    "A",
		HeadRef:     "t.A",
		TailRef:     "t.A",
		RestHead:    "T0",
		RestTail:    "T0",
		NewRestHead: "NewT0()",
		NewRestTail: "NewT0()",
		Assert:      "NonEmpty[int, int, T0, T0] = T1[int]{}",
	}, allow))
	qt.Assert(t, qt.CmpEquals(makeNonEmpty(3), nonEmptyInfo{
		arityInfo:   makeArity(3),
		HeadType:    "A",
		TailType:    "C",
		HeadRef:     "t.A",
		TailRef:     "t.C",
		RestHead:    "T2[B, C]",
		RestTail:    "T2[A, B]",
		NewRestHead: "NewT2(t.B, t.C)",
		NewRestTail: "NewT2(t.A, t.B)",
		Assert:      "NonEmpty[int, int, T2[int, int], T2[int, int]] = T3[int, int, int]{}",
	}, allow))
}

func TestMakeGrow(t *testing.T) {
	allow := cmp.AllowUnexported(growInfo{})
	qt.Assert(t, qt.CmpEquals(makeGrow(0), growInfo{
		arityInfo:  makeArity(0),
		Fresh:      "A",
		GrowDecl:   "[A any]",
		AppendRet:  "T1[A]",
		PrependRet: "T1[A]",
		AppendNew:  "NewT1(v)",
		PrependNew: "NewT1(v)",
	}, allow))
	qt.Assert(t, qt.CmpEquals(makeGrow(3), growInfo{
		arityInfo:  makeArity(3),
		Fresh:      "D",
		GrowDecl:   "[A, B, C, D any]",
		AppendRet:  "T4[A, B, C, D]",
		PrependRet: "T4[D, A, B, C]",
		AppendNew:  "NewT4(t.A, t.B, t.C, v)",
		PrependNew: "NewT4(v, t.A, t.B, t.C)",
	}, allow))
}

// The per-arity template output is committed verbatim, so pin one
// block of each kind exactly.
func TestTupleBlockRender(t *testing.T) {
	var buf bytes.Buffer
	err := tupleBlock.Execute(&buf, makeArity(1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(buf.String(), `// T1 holds 1 value.
type T1[A any] struct {
	A A
}

var _ Tuple = T1[int]{}

// NewT1 returns a tuple of the given value.
func NewT1[A any](a A) T1[A] {
	return T1[A]{a}
}

// Len returns 1.
func (t T1[A]) Len() int {
	return 1
}

// Slice returns the tuple's elements as a []any slice.
func (t T1[A]) Slice() []any {
	return []any{t.A}
}

// String implements fmt.Stringer.
func (t T1[A]) String() string {
	return formatTuple(t.Slice())
}
`))
}

func TestGrowBlockRender(t *testing.T) {
	var buf bytes.Buffer
	err := growBlock.Execute(&buf, makeGrow(0))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(buf.String(), `// Append0 returns the tuple holding the elements of t followed by v.
func Append0[A any](t T0, v A) T1[A] {
	return NewT1(v)
}

// Prepend0 returns the tuple holding v followed by the elements of t.
func Prepend0[A any](t T0, v A) T1[A] {
	return NewT1(v)
}
`))
}
