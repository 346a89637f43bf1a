package metric

import "slices"

// StringEquality scores 1 for equal strings and 0 otherwise.
type StringEquality struct{}

// Compare implements StringMetric.
func (StringEquality) Compare(a, b string) float64 { return boolScore(a == b) }

// ListEquality scores 1 for element-wise equal lists and 0 otherwise.
// A nil list equals an empty one.
type ListEquality[T comparable] struct{}

// Compare implements ListMetric.
func (ListEquality[T]) Compare(a, b []T) float64 { return boolScore(slices.Equal(a, b)) }

// SetEquality scores 1 for sets with the same members and 0 otherwise.
type SetEquality[T comparable] struct{}

// Compare implements SetMetric.
func (SetEquality[T]) Compare(a, b Set[T]) float64 {
	return boolScore(len(a) == len(b) && intersection(a, b) == len(a))
}

func boolScore(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
