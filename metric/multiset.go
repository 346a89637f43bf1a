package metric

import "math"

// CosineSimilarity is the cosine of the angle between the occurrence-count
// vectors of two multisets: Σ a[x]·b[x] / (‖a‖·‖b‖).
type CosineSimilarity[T comparable] struct{}

// Compare implements MultisetMetric.
func (CosineSimilarity[T]) Compare(a, b Multiset[T]) float64 {
	if s, ok := emptySets(len(a), len(b)); ok {
		return s
	}
	var dot, na, nb float64
	for x, ca := range a {
		na += float64(ca * ca)
		dot += float64(ca * b[x])
	}
	for _, cb := range b {
		nb += float64(cb * cb)
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return clamp01(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

// BlockDistance is 1 − L1(a, b) / (|a| + |b|), where L1 sums the absolute
// count differences and |·| is the total number of occurrences.
type BlockDistance[T comparable] struct{}

// Compare implements MultisetMetric.
func (BlockDistance[T]) Compare(a, b Multiset[T]) float64 {
	if s, ok := emptySets(len(a), len(b)); ok {
		return s
	}
	total := a.Size() + b.Size()
	if total == 0 {
		return 1
	}
	dist := 0
	for x, ca := range a {
		dist += abs(ca - b[x])
	}
	for x, cb := range b {
		if _, seen := a[x]; !seen {
			dist += cb
		}
	}
	return 1 - float64(dist)/float64(total)
}

// SimonWhite is 2·|a ∩ b| / (|a| + |b|) over multisets, where the
// intersection keeps the smaller count of each element.
type SimonWhite[T comparable] struct{}

// Compare implements MultisetMetric.
func (SimonWhite[T]) Compare(a, b Multiset[T]) float64 {
	if s, ok := emptySets(len(a), len(b)); ok {
		return s
	}
	total := a.Size() + b.Size()
	if total == 0 {
		return 1
	}
	inter := 0
	for x, ca := range a {
		inter += min(ca, b[x])
	}
	return 2 * float64(inter) / float64(total)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
