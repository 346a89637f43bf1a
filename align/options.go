package align

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simlath/substitution"
)

// Method tokens used as error context prefixes.
const (
	MethodNeedlemanWunsch = "NeedlemanWunsch"
	MethodSmithWaterman   = "SmithWaterman"
	MethodNormalize       = "Normalize"
	MethodNormalizeLocal  = "NormalizeLocal"
)

// Defaults of the two aligners.
const (
	// DefaultGlobalGap is the Needleman–Wunsch gap penalty.
	DefaultGlobalGap = -2.0
	// DefaultLocalGap is the Smith–Waterman gap penalty.
	DefaultLocalGap = -0.5
)

// Option customizes an aligner before it is validated.
// Options only record values; every check happens in the constructor so
// misconfiguration surfaces as an error, never as a panic.
type Option[T comparable] func(*config[T])

// config aggregates the knobs shared by both aligners.
type config[T comparable] struct {
	gap float64
	sub substitution.Substitution[T]
}

// WithGap sets the per-symbol gap penalty (reward space, must be <= 0).
func WithGap[T comparable](gap float64) Option[T] {
	return func(c *config[T]) {
		c.gap = gap
	}
}

// WithSubstitution sets the substitution function used for paired symbols.
func WithSubstitution[T comparable](s substitution.Substitution[T]) Option[T] {
	return func(c *config[T]) {
		c.sub = s
	}
}

// newConfig starts from the given defaults and applies opts in order
// (last wins).
func newConfig[T comparable](gap float64, sub substitution.Substitution[T], opts ...Option[T]) config[T] {
	cfg := config[T]{gap: gap, sub: sub}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// validate runs the checks shared by both aligners, in priority order:
// gap, substitution presence, substitution bounds, degenerate span.
func (c config[T]) validate(method string) error {
	if math.IsNaN(c.gap) || math.IsInf(c.gap, 0) || c.gap > 0 {
		return fmt.Errorf("%s: gap %v: %w", method, c.gap, ErrInvalidGap)
	}
	if c.sub == nil {
		return fmt.Errorf("%s: %w", method, ErrNilSubstitution)
	}
	if err := substitution.Validate(c.sub); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if math.Max(c.sub.Max(), c.gap) == math.Min(c.sub.Min(), c.gap) {
		return fmt.Errorf("%s: best and worst score both %v: %w", method, c.gap, ErrDegenerateBounds)
	}

	return nil
}
