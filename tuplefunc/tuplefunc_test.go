package tuplefunc_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/pkg/errors"

	"github.com/Dragoteryx/tupl"
	"github.com/Dragoteryx/tupl/tuplefunc"
)

func TestToA(t *testing.T) {
	add := func(a, b int) int { return a + b }
	f := tuplefunc.ToA_2_1(add)
	qt.Assert(t, qt.Equals(f(tupl.NewT2(2, 3)), 5))

	join := func(sep string, a, b, c string) string { return strings.Join([]string{a, b, c}, sep) }
	g := tuplefunc.ToA_4_1(join)
	qt.Assert(t, qt.Equals(g(tupl.NewT4("-", "a", "b", "c")), "a-b-c"))
}

func TestToR(t *testing.T) {
	split := func(s string) (string, string) {
		before, after, _ := strings.Cut(s, "=")
		return before, after
	}
	f := tuplefunc.ToR_1_2(split)
	qt.Assert(t, qt.Equals(f("key=value"), tupl.NewT2("key", "value")))
}

func TestToAR(t *testing.T) {
	divmod := func(a, b int) (int, int) { return a / b, a % b }
	f := tuplefunc.ToAR_2_2(divmod)
	qt.Assert(t, qt.Equals(f(tupl.NewT2(7, 2)), tupl.NewT2(3, 1)))
}

func TestToAR_0_0(t *testing.T) {
	ran := false
	f := tuplefunc.ToAR_0_0(func() { ran = true })
	qt.Assert(t, qt.Equals(f(tupl.NewT0()), tupl.NewT0()))
	qt.Assert(t, qt.IsTrue(ran))
}

func TestToAEPassesError(t *testing.T) {
	div := func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	}
	f := tuplefunc.ToAE_2_1(div)

	got, err := f(tupl.NewT2(6, 3))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 2))

	_, err = f(tupl.NewT2(1, 0))
	qt.Assert(t, qt.ErrorMatches(err, "division by zero"))
}

func TestToAREWithEmptyResult(t *testing.T) {
	var stored []string
	store := func(k, v string) error {
		stored = append(stored, k+"="+v)
		return nil
	}
	f := tuplefunc.ToARE_2_0(store)
	empty, err := f(tupl.NewT2("color", "blue"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(empty, tupl.NewT0()))
	qt.Assert(t, qt.DeepEquals(stored, []string{"color=blue"}))
}

type ctxKey struct{}

func TestToCPassesContext(t *testing.T) {
	describe := func(ctx context.Context, prefix string, n int) string {
		return fmt.Sprintf("%s-%d-%v", prefix, n, ctx.Value(ctxKey{}))
	}
	f := tuplefunc.ToCA_2_1(describe)
	ctx := context.WithValue(context.Background(), ctxKey{}, "tagged")
	qt.Assert(t, qt.Equals(f(ctx, tupl.NewT2("p", 3)), "p-3-tagged"))
}

func TestToCARE(t *testing.T) {
	calls := 0
	upper := func(ctx context.Context, s string) (string, error) {
		calls++
		return strings.ToUpper(s), ctx.Err()
	}
	f := tuplefunc.ToCARE_1_1(upper)

	got, err := f(context.Background(), tupl.NewT1("in"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, tupl.NewT1("IN")))
	qt.Assert(t, qt.Equals(calls, 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f(ctx, tupl.NewT1("in"))
	qt.Assert(t, qt.ErrorMatches(err, "context canceled"))
}

func TestToCREKeepsSingleArgument(t *testing.T) {
	parse := func(ctx context.Context, s string) (string, string, bool, error) {
		before, after, ok := strings.Cut(s, "=")
		return before, after, ok, ctx.Err()
	}
	f := tuplefunc.ToCRE_1_3(parse)
	got, err := f(context.Background(), "key=value")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, tupl.NewT3("key", "value", true)))
}
