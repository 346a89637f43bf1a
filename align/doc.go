// Package align computes bounded similarity scores between two sequences by
// dynamic-programming sequence alignment.
//
// 🚀 What is sequence alignment?
//
//	Alignment places two sequences against each other, allowing gaps, and
//	prices the result: every paired symbol costs (or earns) whatever the
//	substitution function says, every inserted or deleted symbol pays the
//	gap penalty. The best alignment score is turned into a similarity in
//	[0,1] using the theoretical best and worst scores for inputs of that
//	length.
//
// ✨ Aligners:
//   - NeedlemanWunsch: global alignment, every symbol of both sequences is
//     accounted for end to end. Distance returns the raw cost.
//   - SmithWaterman  : local alignment, the best-scoring pair of contiguous
//     substrings; unmatched prefixes and suffixes are free. Score returns
//     the raw reward.
//
// Both run in O(|a|·|b|) time and keep only two DP rows of length |b|+1, so
// memory is O(|b|). Rows are allocated per call and never shared, which makes
// every aligner safe for concurrent use as long as its substitution function
// is.
//
// ⚙️ Usage:
//
//	nw, err := align.NewNeedlemanWunsch[rune](
//		align.WithGap[rune](-2),
//		align.WithSubstitution[rune](substitution.Match0Mismatch1[rune]()),
//	)
//	if err != nil {
//		// ErrInvalidGap, ErrDegenerateBounds, substitution.ErrInvalidBounds …
//	}
//	sim := nw.Compare([]rune("kitten"), []rune("sitting")) // 0.714…
//
//	// or, as a string metric:
//	m, err := metric.Runes(nw)
//
// Guarantees:
//   - Compare(x, x) == 1 and Compare(x, y) == Compare(y, x) for symmetric
//     substitution functions.
//   - Compare(nil, nil) == 1; results always lie in [0,1].
//   - Misconfiguration is reported by the constructors; Compare never fails.
package align
