// SPDX-License-Identifier: MIT
// Package: simlath/pipeline
//
// metrics.go: Prometheus collectors for built pipelines.

package pipeline

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Cache label values for simlath_pipeline_cache_requests_total.
const (
	cacheSimplifier = "simplifier"
	cacheTokenizer  = "tokenizer"
	resultHit       = "hit"
	resultMiss      = "miss"
)

type instruments struct {
	comparisons   prometheus.Counter
	duration      prometheus.Observer
	cacheRequests *prometheus.CounterVec
}

// newInstruments registers the collectors of pipeline name with reg.
// Pipelines built twice under one name share their collectors.
func newInstruments(reg prometheus.Registerer, name string) (*instruments, error) {
	labels := prometheus.Labels{"pipeline": name}

	comparisons, err := register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name:        "simlath_pipeline_comparisons_total",
		Help:        "Total number of pipeline comparisons",
		ConstLabels: labels,
	}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:        "simlath_pipeline_compare_duration_seconds",
		Help:        "Latency of pipeline comparisons",
		ConstLabels: labels,
		Buckets:     []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1},
	}))
	if err != nil {
		return nil, err
	}
	cacheRequests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name:        "simlath_pipeline_cache_requests_total",
		Help:        "Pipeline cache lookups by cache and result",
		ConstLabels: labels,
	}, []string{"cache", "result"}))
	if err != nil {
		return nil, err
	}

	return &instruments{
		comparisons:   comparisons,
		duration:      duration,
		cacheRequests: cacheRequests,
	}, nil
}

// register adds c to reg, reusing an identical collector that is already
// registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		var zero C
		return zero, fmt.Errorf("%w: %v", ErrInstrumentation, err)
	}
	return c, nil
}

func (in *instruments) cacheLookup(cache string, hit bool) {
	if in == nil {
		return
	}
	result := resultMiss
	if hit {
		result = resultHit
	}
	in.cacheRequests.WithLabelValues(cache, result).Inc()
}
