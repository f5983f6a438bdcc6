package gen

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func generateByPath(t *testing.T, cfg Config) map[string]string {
	t.Helper()
	files, err := Generate(cfg)
	qt.Assert(t, qt.IsNil(err))
	byPath := make(map[string]string, len(files))
	for _, f := range files {
		byPath[f.Path] = string(f.Source)
	}
	return byPath
}

func TestGenerateDefaults(t *testing.T) {
	byPath := generateByPath(t, Config{})
	qt.Assert(t, qt.HasLen(byPath, 4))

	tuples := byPath["tuple_gen.go"]
	qt.Assert(t, qt.StringContains(tuples, "// Code generated by tuplegen. DO NOT EDIT."))
	qt.Assert(t, qt.StringContains(tuples, "const MaxArity = 50"))
	qt.Assert(t, qt.StringContains(tuples, "type T0 struct{}"))
	qt.Assert(t, qt.StringContains(tuples, "func NewT1[A any](a A) T1[A] {"))
	qt.Assert(t, qt.StringContains(tuples, "type T50[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V, W, X, Y, Z, AA, AB, AC, AD, AE, AF, AG, AH, AI, AJ, AK, AL, AM, AN, AO, AP, AQ, AR, AS, AT, AU, AV, AW, AX any] struct {"))
	qt.Assert(t, qt.Not(qt.StringContains(tuples, "type T51")))

	ne := byPath["nonempty_gen.go"]
	qt.Assert(t, qt.StringContains(ne, "func (t T1[A]) Head() A {"))
	qt.Assert(t, qt.StringContains(ne, "func (t *T1[A]) HeadPtr() *A {"))
	qt.Assert(t, qt.StringContains(ne, "func (t T1[A]) TruncateHead() (A, T0) {"))
	qt.Assert(t, qt.StringContains(ne, "var _ NonEmpty[int, int, T0, T0] = T1[int]{}"))
	qt.Assert(t, qt.Not(qt.StringContains(ne, "func (t T0) Head")))
	qt.Assert(t, qt.Not(qt.StringContains(ne, "var _ NonEmpty[int, int, T50")))

	grow := byPath["grow_gen.go"]
	qt.Assert(t, qt.StringContains(grow, "func Append0[A any](t T0, v A) T1[A] {"))
	qt.Assert(t, qt.StringContains(grow, "func Prepend3[A, B, C, D any](t T3[A, B, C], v D) T4[D, A, B, C] {"))
	qt.Assert(t, qt.StringContains(grow, "func Append49["))
	qt.Assert(t, qt.Not(qt.StringContains(grow, "func Append50")))
	qt.Assert(t, qt.Not(qt.StringContains(grow, "func Prepend50")))
}

func TestGenerateTupleFunc(t *testing.T) {
	byPath := generateByPath(t, Config{})
	src := byPath["tuplefunc/tuplefunc_gen.go"]

	qt.Assert(t, qt.Equals(strings.Count(src, "\nfunc To"), 140))
	qt.Assert(t, qt.StringContains(src, "func ToAR_0_0(f func()) func(tupl.T0) tupl.T0 {"))
	qt.Assert(t, qt.StringContains(src, "func ToCRE_1_3[A0, R0, R1, R2 any](f func(context.Context, A0) (R0, R1, R2, error)) func(context.Context, A0) (tupl.T3[R0, R1, R2], error) {"))
	qt.Assert(t, qt.StringContains(src, "func ToAR_2_4[A0, A1, R0, R1, R2, R3 any](f func(A0, A1) (R0, R1, R2, R3)) func(tupl.T2[A0, A1]) tupl.T4[R0, R1, R2, R3] {"))

	// Cells where neither A nor R applies convert nothing and are not
	// emitted.
	qt.Assert(t, qt.Not(qt.StringContains(src, "To_1_1")))
	qt.Assert(t, qt.Not(qt.StringContains(src, "ToC_1_1")))
	qt.Assert(t, qt.Not(qt.StringContains(src, "ToE_1_1")))
	qt.Assert(t, qt.Not(qt.StringContains(src, "ToCE_1_1")))
}

func TestGenerateSmallRanges(t *testing.T) {
	byPath := generateByPath(t, Config{MaxArity: 2, FnArity: 1})

	tuples := byPath["tuple_gen.go"]
	qt.Assert(t, qt.StringContains(tuples, "const MaxArity = 2"))
	qt.Assert(t, qt.StringContains(tuples, "type T2[A, B any] struct {"))
	qt.Assert(t, qt.Not(qt.StringContains(tuples, "type T3")))

	grow := byPath["grow_gen.go"]
	qt.Assert(t, qt.StringContains(grow, "func Append1["))
	qt.Assert(t, qt.Not(qt.StringContains(grow, "func Append2")))

	src := byPath["tuplefunc/tuplefunc_gen.go"]
	qt.Assert(t, qt.Equals(strings.Count(src, "\nfunc To"), 32))
	qt.Assert(t, qt.Not(qt.StringContains(src, "_2_")))
}

func TestGenerateValidatesConfig(t *testing.T) {
	_, err := Generate(Config{MaxArity: -1})
	qt.Assert(t, qt.ErrorMatches(err, "max arity -1: must be at least 1"))

	_, err = Generate(Config{MaxArity: 60})
	qt.Assert(t, qt.ErrorMatches(err, "max arity 60: cannot name more than 52 type parameters"))

	_, err = Generate(Config{MaxArity: 3, FnArity: 10})
	qt.Assert(t, qt.ErrorMatches(err, "function arity 10: must be between 0 and the max arity 3"))
}

// Formatting is part of generation: the source that comes back must
// already be in canonical form, or committed output would churn.
func TestGenerateOutputIsFormatted(t *testing.T) {
	files, err := Generate(Config{MaxArity: 5, FnArity: 2})
	qt.Assert(t, qt.IsNil(err))
	for _, f := range files {
		formatted, err := formatSource(f.Path, f.Source)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(string(formatted), string(f.Source)), qt.Commentf("file %s", f.Path))
	}
}
