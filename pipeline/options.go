// SPDX-License-Identifier: MIT
// Package: simlath/pipeline
//
// options.go: functional options for NewBuilder.
//
// Contract:
//   • Options mutate pipelineConfig; later options override earlier ones.
//   • Option constructors panic on meaningless inputs (nil logger,
//     negative cache size); Build itself never panics.
//   • No option changes a score. Caches and metrics only observe or
//     memoize the pure simplify and tokenize stages.

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option customizes a Builder.
type Option func(*pipelineConfig)

// WithLogger sets the logger used at Build time. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(c *pipelineConfig) {
		c.logger = l
	}
}

// WithName labels the pipeline in logs and metrics.
// An empty name falls back to DefaultName.
func WithName(name string) Option {
	return func(c *pipelineConfig) {
		c.name = name
	}
}

// WithSimplifierCache memoizes the simplified form of up to n distinct
// inputs in an LRU cache. n == 0 disables the cache; n < 0 panics.
func WithSimplifierCache(n int) Option {
	if n < 0 {
		panic("pipeline: WithSimplifierCache(n<0)")
	}
	return func(c *pipelineConfig) {
		c.simplifierCache = n
	}
}

// WithTokenizerCache memoizes the tokens of up to n distinct simplified
// inputs in an LRU cache. n == 0 disables the cache; n < 0 panics.
func WithTokenizerCache(n int) Option {
	if n < 0 {
		panic("pipeline: WithTokenizerCache(n<0)")
	}
	return func(c *pipelineConfig) {
		c.tokenizerCache = n
	}
}

// WithRegisterer exports comparison counts, latencies and cache hit rates
// to reg, labelled with the pipeline name. Panics on nil.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("pipeline: WithRegisterer(nil)")
	}
	return func(c *pipelineConfig) {
		c.registerer = reg
	}
}
