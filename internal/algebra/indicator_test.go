package algebra

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/prog2math/internal/testutil"
	"github.com/vk/prog2math/internal/texpr"
)

// lit builds a literal indicator carrying the given 0/1 value.
func lit01(v int) Indicator {
	return Indicator{texpr.Int(v)}
}

func TestLogicalConnectives_TruthTables(t *testing.T) {
	t.Parallel()

	for _, a := range []int{0, 1} {
		for _, b := range []int{0, 1} {
			and, err := LogicalAnd(lit01(a), lit01(b))
			require.NoError(t, err)
			require.EqualValues(t, a&b, testutil.MustEval(t, and.Expr, nil), "and(%d,%d)", a, b)

			or, err := LogicalOr(lit01(a), lit01(b))
			require.NoError(t, err)
			require.EqualValues(t, a|b, testutil.MustEval(t, or.Expr, nil), "or(%d,%d)", a, b)
		}
		require.EqualValues(t, 1-a, testutil.MustEval(t, LogicalNot(lit01(a)).Expr, nil), "not(%d)", a)
	}
}

func TestLogicalConnectives_ThreeOperands(t *testing.T) {
	t.Parallel()

	and, err := LogicalAnd(lit01(1), lit01(1), lit01(0))
	require.NoError(t, err)
	require.EqualValues(t, 0, testutil.MustEval(t, and.Expr, nil))

	or, err := LogicalOr(lit01(0), lit01(0), lit01(1))
	require.NoError(t, err)
	require.EqualValues(t, 1, testutil.MustEval(t, or.Expr, nil))
}

func TestLogicalConnectives_RequireOperands(t *testing.T) {
	t.Parallel()

	_, err := LogicalAnd()
	require.ErrorIs(t, err, ErrNoIndicators)
	_, err = LogicalOr()
	require.ErrorIs(t, err, ErrNoIndicators)
}

func TestLogicalNot_DoubleNegationIsIdentity(t *testing.T) {
	t.Parallel()

	// The identity holds for any value, not only for well-formed indicators.
	for _, x := range []float64{0, 1, 0.25, -3} {
		doubled := LogicalNot(LogicalNot(Indicator{texpr.Lit{Text: "x"}}))
		got := testutil.MustEval(t, doubled.Expr, map[string]float64{"x": x})
		require.InDelta(t, x, got, 1e-12)
	}
}

func TestAreEqual_Grid(t *testing.T) {
	t.Parallel()

	grid := []float64{-3, -1, -0.5, 0, 0.25, 1, 2.5, 4}
	for _, a := range grid {
		for _, b := range grid {
			want := 0.0
			if a == b {
				want = 1.0
			}
			eq := AreEqual(texpr.Lit{Text: "a"}, texpr.Lit{Text: "b"})
			vars := map[string]float64{"a": a, "b": b}
			require.Equal(t, want, testutil.MustEval(t, eq.Expr, vars), "are_equal(%v,%v)", a, b)
			require.Equal(t, 1-want, testutil.MustEval(t, AreNotEqual(texpr.Lit{Text: "a"}, texpr.Lit{Text: "b"}).Expr, vars), "are_not_equal(%v,%v)", a, b)
		}
	}
}

func TestIsNonNegative(t *testing.T) {
	t.Parallel()

	for v, want := range map[float64]float64{-2: 0, -0.5: 0, 0: 1, 0.5: 1, 3: 1} {
		got := testutil.MustEval(t, IsNonNegative(texpr.Lit{Text: "a"}).Expr, map[string]float64{"a": v})
		require.Equal(t, want, got, "is_non_negative(%v)", v)
	}
}

func TestOrderings_Grid(t *testing.T) {
	t.Parallel()

	grid := []float64{-2, -0.5, 0, 1, 3}
	a, b := texpr.Lit{Text: "a"}, texpr.Lit{Text: "b"}
	for _, x := range grid {
		for _, y := range grid {
			vars := map[string]float64{"a": x, "b": y}
			check := func(ind Indicator, want bool, op string) {
				wantF := 0.0
				if want {
					wantF = 1.0
				}
				require.Equal(t, wantF, testutil.MustEval(t, ind.Expr, vars), "%s(%v,%v)", op, x, y)
			}
			check(LessThanOrEqual(a, b), x <= y, "less_than_or_equal")
			check(LessThan(a, b), x < y, "less_than")
			check(BiggerThanOrEqual(a, b), x >= y, "bigger_than_or_equal")
			check(BiggerThan(a, b), x > y, "bigger_than")
		}
	}
}
