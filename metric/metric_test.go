package metric_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/simlath/align"
	"github.com/katalvlaran/simlath/metric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func words(s string) []string { return strings.Fields(s) }

func TestStringEquality(t *testing.T) {
	var m metric.StringEquality
	assert.Equal(t, 1.0, m.Compare("abc", "abc"))
	assert.Equal(t, 1.0, m.Compare("", ""))
	assert.Equal(t, 0.0, m.Compare("abc", "ABC"))
}

func TestListEquality_NilEqualsEmpty(t *testing.T) {
	var m metric.ListEquality[string]
	assert.Equal(t, 1.0, m.Compare(nil, []string{}))
	assert.Equal(t, 1.0, m.Compare(words("a b"), words("a b")))
	assert.Equal(t, 0.0, m.Compare(words("a b"), words("b a")), "order matters for lists")
}

func TestSetEquality(t *testing.T) {
	var m metric.SetEquality[string]
	assert.Equal(t, 1.0, m.Compare(metric.SetOf(words("a b b")), metric.SetOf(words("b a"))))
	assert.Equal(t, 0.0, m.Compare(metric.SetOf(words("a b")), metric.SetOf(words("a c"))))
	assert.Equal(t, 1.0, m.Compare(nil, metric.Set[string]{}))
}

// TestSetMetrics_Values checks the closed-form values on {a,b,c} vs {b,c,d}.
func TestSetMetrics_Values(t *testing.T) {
	a := metric.SetOf(words("a b c"))
	b := metric.SetOf(words("b c d"))

	cases := []struct {
		name string
		m    metric.SetMetric[string]
		want float64
	}{
		{"Jaccard", metric.Jaccard[string]{}, 2.0 / 4.0},
		{"Dice", metric.Dice[string]{}, 4.0 / 6.0},
		{"Overlap", metric.Overlap[string]{}, 2.0 / 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.m.Compare(a, b), eps)
			assert.InDelta(t, tc.want, tc.m.Compare(b, a), eps, "symmetric")
			assert.Equal(t, 1.0, tc.m.Compare(a, a))
			assert.Equal(t, 1.0, tc.m.Compare(nil, nil), "two empty sets")
			assert.Equal(t, 0.0, tc.m.Compare(a, nil), "empty vs non-empty")
			assert.Equal(t, 0.0, tc.m.Compare(nil, b))
		})
	}
}

func TestOverlap_Subset(t *testing.T) {
	small := metric.SetOf(words("b c"))
	large := metric.SetOf(words("a b c d"))
	assert.Equal(t, 1.0, metric.Overlap[string]{}.Compare(small, large))
	assert.InDelta(t, 0.5, metric.Jaccard[string]{}.Compare(small, large), eps)
}

// TestMultisetMetrics_Values uses [a a b] vs [a b b c].
func TestMultisetMetrics_Values(t *testing.T) {
	a := metric.MultisetOf(words("a a b"))
	b := metric.MultisetOf(words("a b b c"))

	require.Equal(t, 3, a.Size())
	require.Equal(t, 4, b.Size())

	cases := []struct {
		name string
		m    metric.MultisetMetric[string]
		want float64
	}{
		// dot = 2·1 + 1·2 = 4; ‖a‖ = √5, ‖b‖ = √6.
		{"Cosine", metric.CosineSimilarity[string]{}, 4.0 / (2.23606797749979 * 2.449489742783178)},
		// |2−1| + |1−2| + |0−1| = 3 over 7 occurrences.
		{"BlockDistance", metric.BlockDistance[string]{}, 1 - 3.0/7.0},
		// min counts: a→1, b→1, c→0.
		{"SimonWhite", metric.SimonWhite[string]{}, 4.0 / 7.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.m.Compare(a, b), 1e-12)
			assert.InDelta(t, tc.want, tc.m.Compare(b, a), 1e-12, "symmetric")
			assert.InDelta(t, 1.0, tc.m.Compare(a, a), 1e-12)
			assert.Equal(t, 1.0, tc.m.Compare(nil, nil))
			assert.Equal(t, 0.0, tc.m.Compare(a, nil))
		})
	}
}

func TestMultiset_DisjointScoresZero(t *testing.T) {
	a := metric.MultisetOf(words("x y"))
	b := metric.MultisetOf(words("z"))
	assert.Equal(t, 0.0, metric.CosineSimilarity[string]{}.Compare(a, b))
	assert.Equal(t, 0.0, metric.BlockDistance[string]{}.Compare(a, b))
	assert.Equal(t, 0.0, metric.SimonWhite[string]{}.Compare(a, b))
}

func TestJaroWinkler_KnownValues(t *testing.T) {
	jw := metric.NewJaroWinkler()

	cases := []struct {
		a, b string
		want float64
	}{
		{"MARTHA", "MARHTA", 0.9611111111111111},
		{"DWAYNE", "DUANE", 0.84},
		{"DIXON", "DICKSONX", 0.8133333333333332},
		{"R163", "R150", 2.0 / 3.0},
		{"abc", "xyz", 0},
	}
	for _, tc := range cases {
		t.Run(tc.a+"/"+tc.b, func(t *testing.T) {
			assert.InDelta(t, tc.want, jw.Compare(tc.a, tc.b), eps)
			assert.InDelta(t, tc.want, jw.Compare(tc.b, tc.a), eps)
		})
	}
}

func TestJaroWinkler_Empty(t *testing.T) {
	jw := metric.NewJaroWinkler()
	assert.Equal(t, 1.0, jw.Compare("", ""))
	assert.Equal(t, 0.0, jw.Compare("abc", ""))
	assert.Equal(t, 0.0, jw.Compare("", "abc"))
}

func TestJaroWinkler_CodePoints(t *testing.T) {
	jw := metric.NewJaroWinkler()
	// One substitution in a 4-rune word; byte length would differ.
	assert.InDelta(t, jw.Compare("abcd", "abcx"), jw.Compare("äbcd", "äbcx"), eps)
}

func TestRunes_AdaptsListMetric(t *testing.T) {
	nw, err := align.NewNeedlemanWunsch[rune]()
	require.NoError(t, err)

	m, err := metric.Runes(nw)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/14.0, m.Compare("kitten", "sitting"), eps)
	assert.Equal(t, 1.0, m.Compare("", ""))
}

func TestRunes_RejectsNil(t *testing.T) {
	_, err := metric.Runes(nil)
	assert.ErrorIs(t, err, metric.ErrNilMetric)

	_, err = metric.Runes((*align.NeedlemanWunsch[rune])(nil))
	assert.ErrorIs(t, err, metric.ErrNilMetric, "typed nil pointer")

	var fn metric.ListFunc[rune]
	_, err = metric.Runes(fn)
	assert.ErrorIs(t, err, metric.ErrNilMetric, "nil func")
}

func TestFuncAdapters(t *testing.T) {
	var s metric.StringMetric = metric.StringFunc(func(a, b string) float64 {
		if len(a) == len(b) {
			return 1
		}
		return 0
	})
	assert.Equal(t, 1.0, s.Compare("ab", "cd"))

	var l metric.ListMetric[int] = metric.ListFunc[int](func(a, b []int) float64 {
		return float64(min(len(a), len(b)))
	})
	assert.Equal(t, 2.0, l.Compare([]int{1, 2, 3}, []int{4, 5}))
}
