package metric

import "reflect"

// StringMetric compares two strings.
type StringMetric interface {
	Compare(a, b string) float64
}

// ListMetric compares two ordered sequences.
type ListMetric[T comparable] interface {
	Compare(a, b []T) float64
}

// SetMetric compares two sets.
type SetMetric[T comparable] interface {
	Compare(a, b Set[T]) float64
}

// MultisetMetric compares two multisets (bags).
type MultisetMetric[T comparable] interface {
	Compare(a, b Multiset[T]) float64
}

// StringFunc adapts a plain function to StringMetric.
type StringFunc func(a, b string) float64

// Compare implements StringMetric.
func (f StringFunc) Compare(a, b string) float64 { return f(a, b) }

// ListFunc adapts a plain function to ListMetric.
type ListFunc[T comparable] func(a, b []T) float64

// Compare implements ListMetric.
func (f ListFunc[T]) Compare(a, b []T) float64 { return f(a, b) }

// Runes returns a StringMetric that converts both strings to code points
// and delegates to m. A nil m, including a typed nil pointer, is rejected
// with ErrNilMetric.
func Runes(m ListMetric[rune]) (StringMetric, error) {
	if isNil(m) {
		return nil, ErrNilMetric
	}
	return runeMetric{m: m}, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

type runeMetric struct {
	m ListMetric[rune]
}

func (r runeMetric) Compare(a, b string) float64 {
	return r.m.Compare([]rune(a), []rune(b))
}

// Set is an unordered collection of distinct elements.
type Set[T comparable] map[T]struct{}

// SetOf collects items into a Set. Duplicates collapse.
func SetOf[T comparable](items []T) Set[T] {
	s := make(Set[T], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

// Contains reports whether x is in s.
func (s Set[T]) Contains(x T) bool {
	_, ok := s[x]
	return ok
}

// intersection returns |a ∩ b|, iterating over the smaller set.
func intersection[T comparable](a, b Set[T]) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for x := range a {
		if b.Contains(x) {
			n++
		}
	}
	return n
}

// Multiset counts occurrences of each element.
type Multiset[T comparable] map[T]int

// MultisetOf counts items into a Multiset.
func MultisetOf[T comparable](items []T) Multiset[T] {
	m := make(Multiset[T], len(items))
	for _, it := range items {
		m[it]++
	}
	return m
}

// Size returns the total number of occurrences.
func (m Multiset[T]) Size() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}
