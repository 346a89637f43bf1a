package config

import "errors"

var (
	// ErrUnknownStage indicates a stage type no factory is registered for.
	ErrUnknownStage = errors.New("config: unknown stage type")

	// ErrInvalidParam indicates a stage parameter that is missing, malformed
	// or out of range.
	ErrInvalidParam = errors.New("config: invalid stage parameter")

	// ErrDuplicateStage indicates a second factory registered under a name.
	ErrDuplicateStage = errors.New("config: stage type already registered")

	// ErrMissingMetric indicates a configuration without a metric.
	ErrMissingMetric = errors.New("config: metric is required")

	// ErrInvalidLog indicates an unknown log level or format.
	ErrInvalidLog = errors.New("config: invalid log settings")
)
