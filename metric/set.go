package metric

// Set metrics. Every metric scores two empty sets as identical (1) and an
// empty set against a non-empty one as disjoint (0).

// Jaccard is |a ∩ b| / |a ∪ b|.
type Jaccard[T comparable] struct{}

// Compare implements SetMetric.
func (Jaccard[T]) Compare(a, b Set[T]) float64 {
	if s, ok := emptySets(len(a), len(b)); ok {
		return s
	}
	inter := intersection(a, b)
	return float64(inter) / float64(len(a)+len(b)-inter)
}

// Dice is 2·|a ∩ b| / (|a| + |b|).
type Dice[T comparable] struct{}

// Compare implements SetMetric.
func (Dice[T]) Compare(a, b Set[T]) float64 {
	if s, ok := emptySets(len(a), len(b)); ok {
		return s
	}
	return 2 * float64(intersection(a, b)) / float64(len(a)+len(b))
}

// Overlap is |a ∩ b| / min(|a|, |b|).
type Overlap[T comparable] struct{}

// Compare implements SetMetric.
func (Overlap[T]) Compare(a, b Set[T]) float64 {
	if s, ok := emptySets(len(a), len(b)); ok {
		return s
	}
	return float64(intersection(a, b)) / float64(min(len(a), len(b)))
}

// emptySets resolves the empty-input cases shared by all collection metrics.
func emptySets(la, lb int) (float64, bool) {
	switch {
	case la == 0 && lb == 0:
		return 1, true
	case la == 0 || lb == 0:
		return 0, true
	}
	return 0, false
}
