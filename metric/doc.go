// Package metric defines the comparison contracts shared by every terminal
// stage of a pipeline, plus the set- and list-based metrics that work on
// already tokenized input.
//
// Contracts, all returning a similarity in [0,1]:
//
//	StringMetric          Compare(a, b string) float64
//	ListMetric[T]         Compare(a, b []T) float64
//	SetMetric[T]          Compare(a, b Set[T]) float64
//	MultisetMetric[T]     Compare(a, b Multiset[T]) float64
//
// A correct metric is symmetric, returns 1 for identical input and is
// defined for empty input. Metrics in this package are stateless values and
// safe for concurrent use.
//
// The aligners in package align satisfy ListMetric; Runes turns a
// ListMetric[rune] into a StringMetric that compares code points and
// rejects a nil inner metric with ErrNilMetric.
package metric
