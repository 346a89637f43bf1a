// SPDX-License-Identifier: MIT
// Package: simlath/substitution
//
// substitution.go: the Substitution contract and the MatchMismatch and Func
// implementations.

package substitution

import (
	"fmt"
	"math"
)

// Bounds exposes the constant score range of a substitution function.
// Max and Min MUST NOT depend on any input.
type Bounds interface {
	// Max returns the largest value Compare can return.
	Max() float64
	// Min returns the smallest value Compare can return.
	Min() float64
}

// Substitution scores the pairing of a[i] with b[j].
//
// Implementations MUST be pure: the positions are used only to index into
// a and b, never as hidden state. Compare is only called with in-range
// indexes.
type Substitution[T comparable] interface {
	Bounds
	Compare(a []T, i int, b []T, j int) float64
}

// Validate checks that s declares finite bounds with Max() >= Min().
// Aligners call it for user supplied functions at construction time.
// Complexity: O(1).
func Validate(s Bounds) error {
	if s == nil {
		return fmt.Errorf("Validate: nil substitution: %w", ErrNilFunc)
	}
	hi, lo := s.Max(), s.Min()
	if !finite(hi) || !finite(lo) {
		return fmt.Errorf("Validate: bounds [%v,%v]: %w", lo, hi, ErrNonFinite)
	}
	if hi < lo {
		return fmt.Errorf("Validate: max %v < min %v: %w", hi, lo, ErrInvalidBounds)
	}

	return nil
}

// MatchMismatch returns a fixed reward when the two symbols are equal and a
// fixed penalty otherwise. Max() is the match reward, Min() the mismatch
// penalty.
type MatchMismatch[T comparable] struct {
	match    float64
	mismatch float64
}

// NewMatchMismatch builds a MatchMismatch function.
// Returns ErrNonFinite for NaN/Inf scores and ErrInvalidBounds when
// match < mismatch.
func NewMatchMismatch[T comparable](match, mismatch float64) (MatchMismatch[T], error) {
	if !finite(match) || !finite(mismatch) {
		return MatchMismatch[T]{}, fmt.Errorf("NewMatchMismatch: match=%v mismatch=%v: %w", match, mismatch, ErrNonFinite)
	}
	if match < mismatch {
		return MatchMismatch[T]{}, fmt.Errorf("NewMatchMismatch: match %v < mismatch %v: %w", match, mismatch, ErrInvalidBounds)
	}

	return MatchMismatch[T]{match: match, mismatch: mismatch}, nil
}

// Match0Mismatch1 is the Needleman–Wunsch default: 0 for a match, -1 for a
// mismatch.
func Match0Mismatch1[T comparable]() MatchMismatch[T] {
	return MatchMismatch[T]{match: 0, mismatch: -1}
}

// Match1Mismatch2 is the Smith–Waterman default: +1 for a match, -2 for a
// mismatch.
func Match1Mismatch2[T comparable]() MatchMismatch[T] {
	return MatchMismatch[T]{match: 1, mismatch: -2}
}

// Compare implements Substitution.
func (m MatchMismatch[T]) Compare(a []T, i int, b []T, j int) float64 {
	if a[i] == b[j] {
		return m.match
	}

	return m.mismatch
}

// Max implements Bounds.
func (m MatchMismatch[T]) Max() float64 { return m.match }

// Min implements Bounds.
func (m MatchMismatch[T]) Min() float64 { return m.mismatch }

func (m MatchMismatch[T]) String() string {
	return fmt.Sprintf("MatchMismatch[match=%g, mismatch=%g]", m.match, m.mismatch)
}

// ScoreFunc is the signature accepted by NewFunc.
type ScoreFunc[T comparable] func(a []T, i int, b []T, j int) float64

// Func adapts an arbitrary pure ScoreFunc with caller declared bounds.
// The caller is responsible for fn staying within [min, max].
type Func[T comparable] struct {
	fn       ScoreFunc[T]
	min, max float64
}

// NewFunc wraps fn with the declared bounds [min, max].
// Returns ErrNilFunc, ErrNonFinite or ErrInvalidBounds on bad input.
func NewFunc[T comparable](fn ScoreFunc[T], min, max float64) (Func[T], error) {
	if fn == nil {
		return Func[T]{}, fmt.Errorf("NewFunc: %w", ErrNilFunc)
	}
	if !finite(min) || !finite(max) {
		return Func[T]{}, fmt.Errorf("NewFunc: bounds [%v,%v]: %w", min, max, ErrNonFinite)
	}
	if max < min {
		return Func[T]{}, fmt.Errorf("NewFunc: max %v < min %v: %w", max, min, ErrInvalidBounds)
	}

	return Func[T]{fn: fn, min: min, max: max}, nil
}

// Compare implements Substitution.
func (f Func[T]) Compare(a []T, i int, b []T, j int) float64 { return f.fn(a, i, b, j) }

// Max implements Bounds.
func (f Func[T]) Max() float64 { return f.max }

// Min implements Bounds.
func (f Func[T]) Min() float64 { return f.min }

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
