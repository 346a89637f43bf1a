package align

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/simlath/substitution"
)

// SmithWaterman: local sequence alignment
//
// Description:
//
//	Finds the pair of contiguous substrings of a and b with the highest
//	alignment reward. Unmatched prefixes and suffixes cost nothing: every
//	cell is floored at 0, so a fresh alignment may start anywhere, and the
//	answer is the maximum over all cells rather than the last one.
//
// Algorithm Outline (two rolling rows):
//  1. a or b empty ⇒ score 0.
//  2. prev[j] = 0 for j = 0..m, best = 0
//     For i = 1..n:
//     curr[0] = 0
//     For j = 1..m:
//     curr[j] = max(0, prev[j] + gap, curr[j−1] + gap, prev[j−1] + sub(i−1, j−1))
//     best    = max(best, curr[j])
//     swap(prev, curr)
//  3. score = best.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m)
type SmithWaterman[T comparable] struct {
	gap float64
	sub substitution.Substitution[T]
}

// NewSmithWaterman builds a local aligner.
// Defaults: gap DefaultLocalGap (−0.5), substitution Match1Mismatch2.
//
// On top of the shared checks the substitution must offer a positive reward
// (Max() > 0); otherwise every local score is 0 and ErrDegenerateBounds is
// returned.
func NewSmithWaterman[T comparable](opts ...Option[T]) (*SmithWaterman[T], error) {
	cfg := newConfig[T](DefaultLocalGap, substitution.Match1Mismatch2[T](), opts...)
	if err := cfg.validate(MethodSmithWaterman); err != nil {
		return nil, err
	}
	if cfg.sub.Max() <= 0 {
		return nil, fmt.Errorf("%s: max reward %v <= 0: %w", MethodSmithWaterman, cfg.sub.Max(), ErrDegenerateBounds)
	}

	return &SmithWaterman[T]{gap: cfg.gap, sub: cfg.sub}, nil
}

// Gap returns the configured gap penalty.
func (sw *SmithWaterman[T]) Gap() float64 { return sw.gap }

// Substitution returns the configured substitution function.
func (sw *SmithWaterman[T]) Substitution() substitution.Substitution[T] { return sw.sub }

// Score returns the best local alignment reward of a against b (>= 0).
func (sw *SmithWaterman[T]) Score(a, b []T) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0
	}

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	best := 0.0

	for i := 1; i <= n; i++ {
		curr[0] = 0
		for j := 1; j <= m; j++ {
			v := max(
				0,
				prev[j]+sw.gap,
				curr[j-1]+sw.gap,
				prev[j-1]+sw.sub.Compare(a, i-1, b, j-1),
			)
			curr[j] = v
			if v > best {
				best = v
			}
		}
		prev, curr = curr, prev
	}

	return best
}

// Compare returns the similarity of a and b in [0,1].
// Identical sequences score 1; exactly one empty sequence scores 0.
func (sw *SmithWaterman[T]) Compare(a, b []T) float64 {
	if slices.Equal(a, b) {
		return 1
	}

	return normalizeLocal(sw.Score(a, b), len(a), len(b), sw.gap, sw.sub)
}

func (sw *SmithWaterman[T]) String() string {
	return fmt.Sprintf("SmithWaterman[gap=%g, substitution=%v]", sw.gap, sw.sub)
}
