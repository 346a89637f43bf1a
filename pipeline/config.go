// SPDX-License-Identifier: MIT
// Package: simlath/pipeline
//
// config.go: resolved builder settings and their defaults.
//
// Defaults:
//   • logger          = zap.NewNop()
//   • name            = DefaultName
//   • simplifierCache = 0 (disabled)
//   • tokenizerCache  = 0 (disabled)
//   • registerer      = nil (no metrics)

package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type pipelineConfig struct {
	logger          *zap.Logger
	name            string
	simplifierCache int
	tokenizerCache  int
	registerer      prometheus.Registerer
}

// newPipelineConfig applies opts in order over the defaults.
func newPipelineConfig(opts ...Option) pipelineConfig {
	cfg := pipelineConfig{
		logger: zap.NewNop(),
		name:   DefaultName,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.name == "" {
		cfg.name = DefaultName
	}

	return cfg
}
