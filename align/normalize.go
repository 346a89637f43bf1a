package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simlath/substitution"
)

// Normalize turns a global alignment cost into a similarity in [0,1].
//
// Derivation (L = max(lenA, lenB), gap in reward space):
//
//	maxDistance = L · max(s.Max(), gap)   // best reward per position
//	minDistance = L · min(s.Min(), gap)   // worst reward per position
//	similarity  = (−raw − minDistance) / (maxDistance − minDistance)
//
// Two empty sequences are identical by definition and yield exactly 1.
// The result is clamped to [0,1] to absorb floating-point rounding; any
// larger excursion means s returned values outside its declared bounds.
//
// Errors:
//   - ErrNegativeLength  : lenA or lenB < 0.
//   - ErrDegenerateBounds: maxDistance == minDistance for non-empty input.
func Normalize(raw float64, lenA, lenB int, gap float64, s substitution.Bounds) (float64, error) {
	if lenA < 0 || lenB < 0 {
		return 0, fmt.Errorf("%s: lengths %d,%d: %w", MethodNormalize, lenA, lenB, ErrNegativeLength)
	}
	if lenA == 0 && lenB == 0 {
		return 1, nil
	}
	if math.Max(s.Max(), gap) == math.Min(s.Min(), gap) {
		return 0, fmt.Errorf("%s: %w", MethodNormalize, ErrDegenerateBounds)
	}

	return normalizeGlobal(raw, lenA, lenB, gap, s), nil
}

// NormalizeLocal turns a local alignment reward into a similarity in [0,1].
//
// The best local score two sequences can reach is min(lenA, lenB) paired
// symbols at the maximum reward, so
//
//	similarity = score / (min(lenA, lenB) · max(s.Max(), gap))
//
// Two empty sequences yield 1, exactly one empty sequence yields 0.
//
// Errors:
//   - ErrNegativeLength  : lenA or lenB < 0.
//   - ErrDegenerateBounds: max(s.Max(), gap) <= 0 (no positive reward exists).
func NormalizeLocal(score float64, lenA, lenB int, gap float64, s substitution.Bounds) (float64, error) {
	if lenA < 0 || lenB < 0 {
		return 0, fmt.Errorf("%s: lengths %d,%d: %w", MethodNormalizeLocal, lenA, lenB, ErrNegativeLength)
	}
	if math.Max(s.Max(), gap) <= 0 {
		return 0, fmt.Errorf("%s: %w", MethodNormalizeLocal, ErrDegenerateBounds)
	}

	return normalizeLocal(score, lenA, lenB, gap, s), nil
}

// normalizeGlobal is Normalize without validation; aligners call it after
// their constructor has ruled out degenerate bounds.
func normalizeGlobal(raw float64, lenA, lenB int, gap float64, s substitution.Bounds) float64 {
	if lenA == 0 && lenB == 0 {
		return 1
	}
	l := float64(max(lenA, lenB))
	maxDistance := l * math.Max(s.Max(), gap)
	minDistance := l * math.Min(s.Min(), gap)

	return clamp01((-raw - minDistance) / (maxDistance - minDistance))
}

// normalizeLocal is NormalizeLocal without validation.
func normalizeLocal(score float64, lenA, lenB int, gap float64, s substitution.Bounds) float64 {
	if lenA == 0 && lenB == 0 {
		return 1
	}
	if lenA == 0 || lenB == 0 {
		return 0
	}
	best := float64(min(lenA, lenB)) * math.Max(s.Max(), gap)

	return clamp01(score / best)
}

// clamp01 confines x to [0,1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}

	return x
}
