package metric

import "errors"

// ErrNilMetric indicates a nil metric handed to an adapter.
var ErrNilMetric = errors.New("metric: nil metric")
