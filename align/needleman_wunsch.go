package align

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/simlath/substitution"
)

// NeedlemanWunsch: global sequence alignment
//
// Description:
//
//	Aligns two sequences end to end and reports the cheapest cost of turning
//	a into b, where a paired symbol costs −sub(a[i], b[j]) and an inserted
//	or deleted symbol costs −gap.
//
// Algorithm Outline (two rolling rows, g = −gap ≥ 0):
//  1. a == b              ⇒ cost 0.
//  2. a or b empty        ⇒ cost g · len(other).
//  3. prev[j] = j for j = 0..m              (pure insertions)
//     For i = 1..n:
//     curr[0] = i                            (pure deletions)
//     For j = 1..m:
//     curr[j] = min(prev[j] + g, curr[j−1] + g, prev[j−1] − sub(i−1, j−1))
//     swap(prev, curr)
//  4. cost = prev[m].
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m): two rows of m+1 values, allocated per call.
//
// The borders count symbols rather than gap cost, so a leading gap costs 1
// whatever the gap penalty; only interior and trailing gaps cost g.
//
// A NeedlemanWunsch is immutable after construction and safe for concurrent
// use if its substitution function is.
type NeedlemanWunsch[T comparable] struct {
	gap float64
	sub substitution.Substitution[T]
}

// NewNeedlemanWunsch builds a global aligner.
// Defaults: gap DefaultGlobalGap (−2), substitution Match0Mismatch1.
//
// Errors (wrapped with "NeedlemanWunsch: "):
//   - ErrInvalidGap, ErrNilSubstitution, ErrDegenerateBounds
//   - substitution.ErrInvalidBounds / ErrNonFinite from the bounds check
func NewNeedlemanWunsch[T comparable](opts ...Option[T]) (*NeedlemanWunsch[T], error) {
	cfg := newConfig[T](DefaultGlobalGap, substitution.Match0Mismatch1[T](), opts...)
	if err := cfg.validate(MethodNeedlemanWunsch); err != nil {
		return nil, err
	}

	return &NeedlemanWunsch[T]{gap: cfg.gap, sub: cfg.sub}, nil
}

// Gap returns the configured gap penalty.
func (nw *NeedlemanWunsch[T]) Gap() float64 { return nw.gap }

// Substitution returns the configured substitution function.
func (nw *NeedlemanWunsch[T]) Substitution() substitution.Substitution[T] { return nw.sub }

// Distance returns the raw global alignment cost of a against b.
// Identical sequences cost 0. Inputs are never modified.
func (nw *NeedlemanWunsch[T]) Distance(a, b []T) float64 {
	if slices.Equal(a, b) {
		return 0
	}
	g := -nw.gap
	n, m := len(a), len(b)
	if n == 0 {
		return g * float64(m)
	}
	if m == 0 {
		return g * float64(n)
	}

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := range prev {
		prev[j] = float64(j)
	}

	for i := 1; i <= n; i++ {
		curr[0] = float64(i)
		for j := 1; j <= m; j++ {
			curr[j] = min(
				prev[j]+g,                                // deletion of a[i-1]
				curr[j-1]+g,                              // insertion of b[j-1]
				prev[j-1]-nw.sub.Compare(a, i-1, b, j-1), // pairing
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// Compare returns the similarity of a and b in [0,1].
// Compare(x, x) == 1 for every x, including the empty sequence.
func (nw *NeedlemanWunsch[T]) Compare(a, b []T) float64 {
	if slices.Equal(a, b) {
		return 1
	}

	return normalizeGlobal(nw.Distance(a, b), len(a), len(b), nw.gap, nw.sub)
}

func (nw *NeedlemanWunsch[T]) String() string {
	return fmt.Sprintf("NeedlemanWunsch[gap=%g, substitution=%v]", nw.gap, nw.sub)
}
