package align_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/simlath/align"
	"github.com/katalvlaran/simlath/substitution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// newNW builds a rune Needleman–Wunsch aligner or fails the test.
func newNW(t testing.TB, opts ...align.Option[rune]) *align.NeedlemanWunsch[rune] {
	t.Helper()
	nw, err := align.NewNeedlemanWunsch[rune](opts...)
	require.NoError(t, err)
	return nw
}

// newSW builds a rune Smith–Waterman aligner or fails the test.
func newSW(t testing.TB, opts ...align.Option[rune]) *align.SmithWaterman[rune] {
	t.Helper()
	sw, err := align.NewSmithWaterman[rune](opts...)
	require.NoError(t, err)
	return sw
}

func runes(s string) []rune { return []rune(s) }

// TestNeedlemanWunsch_EmptyInputs pins the empty-sequence policy.
func TestNeedlemanWunsch_EmptyInputs(t *testing.T) {
	nw := newNW(t)

	assert.Equal(t, 1.0, nw.Compare(nil, nil), "two empty sequences are identical")
	assert.Equal(t, 1.0, nw.Compare(runes(""), runes("")))
	assert.Equal(t, 0.0, nw.Distance(nil, []rune{}))

	// Pure-gap cost is |gap| per symbol.
	assert.Equal(t, 6.0, nw.Distance(runes("abc"), nil))
	assert.Equal(t, 6.0, nw.Distance(nil, runes("abc")))
	assert.InDelta(t, 0.0, nw.Compare(runes("abc"), nil), eps, "all-gap alignment is the worst case")
}

// TestNeedlemanWunsch_KittenSitting reproduces the exact value for the
// default configuration (gap −2, match 0 / mismatch −1): two substitutions
// plus one interior gap give a raw cost of 4 over L = 7, so the similarity
// is (−4 − (−14)) / (0 − (−14)) = 10/14.
func TestNeedlemanWunsch_KittenSitting(t *testing.T) {
	nw := newNW(t,
		align.WithGap[rune](-2),
		align.WithSubstitution[rune](substitution.Match0Mismatch1[rune]()),
	)

	assert.Equal(t, 4.0, nw.Distance(runes("kitten"), runes("sitting")))
	assert.InDelta(t, 10.0/14.0, nw.Compare(runes("kitten"), runes("sitting")), eps)
}

// TestNeedlemanWunsch_KnownValues checks a table of hand-derived scores.
func TestNeedlemanWunsch_KnownValues(t *testing.T) {
	nw := newNW(t)
	tests := []struct {
		a, b string
		raw  float64
		want float64
	}{
		{"hello", "hallo", 1, 0.9},
		{"abc", "abd", 1, 5.0 / 6.0},
		{"test", "tset", 2, 0.75},
		{"a", "b", 1, 0.5},
		{"abc", "abcde", 4, 0.6},
	}
	for _, tc := range tests {
		t.Run(tc.a+"/"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.raw, nw.Distance(runes(tc.a), runes(tc.b)), "raw cost")
			assert.InDelta(t, tc.want, nw.Compare(runes(tc.a), runes(tc.b)), eps, "similarity")
		})
	}
}

// TestNeedlemanWunsch_LeadingGaps pins the unit-cost borders: each leading
// insertion or deletion costs 1 regardless of the gap penalty, while a
// trailing one costs |gap|.
func TestNeedlemanWunsch_LeadingGaps(t *testing.T) {
	nw := newNW(t)

	tests := []struct {
		a, b string
		raw  float64
		want float64
	}{
		{"xabc", "abc", 1, 7.0 / 8.0},
		{"xyabc", "abc", 2, 0.8},
		{"abcx", "abc", 2, 0.75},
	}
	for _, tc := range tests {
		t.Run(tc.a+"/"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.raw, nw.Distance(runes(tc.a), runes(tc.b)))
			assert.Equal(t, tc.raw, nw.Distance(runes(tc.b), runes(tc.a)), "symmetric")
			assert.InDelta(t, tc.want, nw.Compare(runes(tc.a), runes(tc.b)), eps)
		})
	}

	heavy := newNW(t, align.WithGap[rune](-8))
	assert.Equal(t, 1.0, heavy.Distance(runes("xabc"), runes("abc")), "leading gap ignores the penalty")
	// One leading deletion and three mismatches undercut a trailing gap of 8.
	assert.Equal(t, 4.0, heavy.Distance(runes("abcx"), runes("abc")))
}

// TestNeedlemanWunsch_MatchReward covers a substitution with a positive
// match reward, where the identity short-circuit is what keeps
// Compare(x, x) at exactly 1.
func TestNeedlemanWunsch_MatchReward(t *testing.T) {
	mm, err := substitution.NewMatchMismatch[rune](1, -1)
	require.NoError(t, err)
	nw := newNW(t, align.WithGap[rune](-1), align.WithSubstitution[rune](mm))

	assert.Equal(t, -1.0, nw.Distance(runes("kitten"), runes("sitting")))
	assert.InDelta(t, 8.0/14.0, nw.Compare(runes("kitten"), runes("sitting")), eps)
	assert.Equal(t, 1.0, nw.Compare(runes("kitten"), runes("kitten")))
	assert.Equal(t, 0.0, nw.Distance(runes("kitten"), runes("kitten")))
}

// TestNeedlemanWunsch_Tokens aligns token sequences rather than runes.
func TestNeedlemanWunsch_Tokens(t *testing.T) {
	nw, err := align.NewNeedlemanWunsch[string]()
	require.NoError(t, err)

	a := []string{"the", "quick", "fox"}
	b := []string{"the", "fox"}
	assert.Equal(t, 2.0, nw.Distance(a, b))
	assert.InDelta(t, 4.0/6.0, nw.Compare(a, b), eps)
}

// TestSmithWaterman_Textbook reproduces two standard local alignment
// examples and checks that local and global answers differ.
func TestSmithWaterman_Textbook(t *testing.T) {
	unit, err := substitution.NewMatchMismatch[rune](1, -1)
	require.NoError(t, err)
	sw := newSW(t, align.WithGap[rune](-1), align.WithSubstitution[rune](unit))

	a, b := runes("GATTACA"), runes("GCATGCU")
	assert.Equal(t, 2.0, sw.Score(a, b), "best local alignment")
	assert.InDelta(t, 2.0/7.0, sw.Compare(a, b), eps)

	nw := newNW(t, align.WithGap[rune](-1), align.WithSubstitution[rune](unit))
	assert.NotEqual(t, sw.Compare(a, b), nw.Compare(a, b), "local and global scores must differ here")

	three, err := substitution.NewMatchMismatch[rune](3, -3)
	require.NoError(t, err)
	sw3 := newSW(t, align.WithGap[rune](-2), align.WithSubstitution[rune](three))
	assert.Equal(t, 13.0, sw3.Score(runes("TGTTACGG"), runes("GGTTGACTA")))
	assert.InDelta(t, 13.0/24.0, sw3.Compare(runes("TGTTACGG"), runes("GGTTGACTA")), eps)
}

// TestSmithWaterman_Defaults checks the default configuration
// (gap −0.5, match 1 / mismatch −2).
func TestSmithWaterman_Defaults(t *testing.T) {
	sw := newSW(t)

	assert.Equal(t, 1.0, sw.Compare(nil, nil))
	assert.Equal(t, 0.0, sw.Compare(runes("abc"), nil))
	assert.Equal(t, 0.0, sw.Score(nil, runes("abc")))
	assert.InDelta(t, 0.5, sw.Compare(runes("test"), runes("tset")), eps)
	assert.InDelta(t, 0.6, sw.Compare(runes("hello"), runes("hallo")), eps)
	assert.InDelta(t, 1.0, sw.Compare(runes("abc"), runes("xabcx")), eps, "a full substring match is a perfect local match")
	assert.Equal(t, 0.0, sw.Compare(runes("abc"), runes("xyz")))
}

// TestSmithWaterman_FloorAtZero verifies no cell, and so no score, is negative.
func TestSmithWaterman_FloorAtZero(t *testing.T) {
	sw := newSW(t)
	assert.Equal(t, 0.0, sw.Score(runes("aaaa"), runes("bbbb")))
	assert.Equal(t, 1.0, sw.Score(runes("xxxxa"), runes("abbbb")), "one match survives surrounding mismatches")
}

// TestConstructors_Reject covers construction-time validation in priority order.
func TestConstructors_Reject(t *testing.T) {
	zero, err := substitution.NewFunc(func(a []rune, i int, b []rune, j int) float64 { return 0 }, 0, 0)
	require.NoError(t, err)

	tests := []struct {
		name string
		opts []align.Option[rune]
		want error
	}{
		{"positive gap", []align.Option[rune]{align.WithGap[rune](0.5)}, align.ErrInvalidGap},
		{"nil substitution", []align.Option[rune]{align.WithSubstitution[rune](nil)}, align.ErrNilSubstitution},
		{"inverted bounds", []align.Option[rune]{align.WithSubstitution[rune](inverted{})}, substitution.ErrInvalidBounds},
		{"degenerate", []align.Option[rune]{align.WithGap[rune](0), align.WithSubstitution[rune](zero)}, align.ErrDegenerateBounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := align.NewNeedlemanWunsch[rune](tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			_, err = align.NewSmithWaterman[rune](tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// Local alignment needs a positive reward.
	_, err = align.NewSmithWaterman[rune](align.WithSubstitution[rune](substitution.Match0Mismatch1[rune]()))
	assert.ErrorIs(t, err, align.ErrDegenerateBounds)
}

// TestNormalize_Exported covers the standalone normalizers.
func TestNormalize_Exported(t *testing.T) {
	mm := substitution.Match0Mismatch1[rune]()

	got, err := align.Normalize(4, 6, 7, -2, mm)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/14.0, got, eps)

	got, err = align.Normalize(123, 0, 0, -2, mm)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got, "empty/empty bypasses the division")

	_, err = align.Normalize(0, -1, 2, -2, mm)
	assert.ErrorIs(t, err, align.ErrNegativeLength)

	_, err = align.Normalize(0, 1, 1, 0, constant(0))
	assert.ErrorIs(t, err, align.ErrDegenerateBounds, "0/0 must be reported, not returned as NaN")

	got, err = align.NormalizeLocal(2, 7, 7, -1, constant(1))
	require.NoError(t, err)
	assert.InDelta(t, 2.0/7.0, got, eps)

	got, err = align.NormalizeLocal(0, 0, 3, -1, constant(1))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	_, err = align.NormalizeLocal(1, 1, 1, -1, constant(0))
	assert.ErrorIs(t, err, align.ErrDegenerateBounds)
}

// TestProperties checks reflexivity, symmetry and range on random inputs
// for several aligner/substitution combinations.
func TestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	unit, _ := substitution.NewMatchMismatch[rune](1, -1)
	wide, _ := substitution.NewMatchMismatch[rune](5, 1)

	type comparer interface{ Compare(a, b []rune) float64 }
	metrics := map[string]comparer{
		"nw default":  newNW(t),
		"nw unit":     newNW(t, align.WithGap[rune](-1), align.WithSubstitution[rune](unit)),
		"nw zero gap": newNW(t, align.WithGap[rune](0)),
		"nw wide":     newNW(t, align.WithGap[rune](-3), align.WithSubstitution[rune](wide)),
		"sw default":  newSW(t),
		"sw unit":     newSW(t, align.WithGap[rune](-1), align.WithSubstitution[rune](unit)),
		"sw zero gap": newSW(t, align.WithGap[rune](0)),
		"sw wide":     newSW(t, align.WithGap[rune](-3), align.WithSubstitution[rune](wide)),
	}

	for name, m := range metrics {
		t.Run(name, func(t *testing.T) {
			for k := 0; k < 300; k++ {
				a, b := randomRunes(r, 7), randomRunes(r, 7)
				ab, ba := m.Compare(a, b), m.Compare(b, a)
				assert.InDelta(t, ab, ba, eps, "symmetry for %q/%q", string(a), string(b))
				assert.GreaterOrEqual(t, ab, 0.0)
				assert.LessOrEqual(t, ab, 1.0)
				assert.Equal(t, 1.0, m.Compare(a, a), "reflexivity for %q", string(a))
			}
			assert.Equal(t, 1.0, m.Compare(nil, nil))
		})
	}
}

// TestMonotonicGap verifies that a heavier gap penalty never raises the
// similarity of two sequences that differ only by inserted symbols, as long
// as |gap| stays within |mismatch| and the normalization bounds are fixed.
func TestMonotonicGap(t *testing.T) {
	pairs := [][2]string{
		{"abc", "abcde"},
		{"abc", "xxabc"},
		{"kitten", "kittens"},
		{"a", "aaaa"},
		{"hello", "hello world"},
	}
	gaps := []float64{-0.25, -0.5, -0.75, -1}
	for _, p := range pairs {
		prev := 1.0
		for _, g := range gaps {
			sim := newNW(t, align.WithGap[rune](g)).Compare(runes(p[0]), runes(p[1]))
			assert.LessOrEqual(t, sim, prev+eps, "%q/%q at gap %v", p[0], p[1], g)
			prev = sim
		}
	}
}

// TestConcurrentCompare shares one aligner across goroutines.
func TestConcurrentCompare(t *testing.T) {
	nw := newNW(t)
	sw := newSW(t)
	want := nw.Compare(runes("kitten"), runes("sitting"))
	wantLocal := sw.Compare(runes("kitten"), runes("sitting"))

	const workers = 64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			assert.Equal(t, want, nw.Compare(runes("kitten"), runes("sitting")))
			assert.Equal(t, wantLocal, sw.Compare(runes("kitten"), runes("sitting")))
		}()
	}
	wg.Wait()
}

// randomRunes draws a string of up to n runes over a small alphabet so that
// matches are frequent.
func randomRunes(r *rand.Rand, n int) []rune {
	out := make([]rune, r.Intn(n+1))
	for i := range out {
		out[i] = rune('a' + r.Intn(3))
	}
	return out
}

// inverted declares max < min.
type inverted struct{}

func (inverted) Compare(a []rune, i int, b []rune, j int) float64 { return 0 }
func (inverted) Max() float64 { return -1 }
func (inverted) Min() float64 { return 1 }

// constant is a Bounds with Max == Min.
type constant float64

func (c constant) Max() float64 { return float64(c) }
func (c constant) Min() float64 { return float64(c) }
