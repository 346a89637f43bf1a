// SPDX-License-Identifier: MIT
// Package: simlath/substitution
//
// matrix.go: rune-pair score table.

package substitution

import (
	"fmt"
	"math"
)

// Pair is an unordered key into a Matrix. Pair{x, y} and Pair{y, x} address
// the same cell.
type Pair [2]rune

// Matrix scores rune pairs from an explicit table. Pairs absent from the
// table fall back to the match score (equal runes) or the mismatch score
// (different runes). The table is copied at construction, so a Matrix is
// immutable and safe for concurrent use.
type Matrix struct {
	scores   map[Pair]float64
	match    float64
	mismatch float64
	min, max float64
}

// NewMatrix builds a Matrix from scores plus the two fallbacks.
// Bounds are the extremes over the table and both fallbacks.
// Returns ErrNonFinite if any score is NaN or infinite, ErrInvalidBounds if
// the same unordered pair is given two different scores.
// Complexity: O(len(scores)).
func NewMatrix(scores map[Pair]float64, match, mismatch float64) (*Matrix, error) {
	if !finite(match) || !finite(mismatch) {
		return nil, fmt.Errorf("NewMatrix: match=%v mismatch=%v: %w", match, mismatch, ErrNonFinite)
	}
	m := &Matrix{
		scores:   make(map[Pair]float64, len(scores)),
		match:    match,
		mismatch: mismatch,
		min:      math.Min(match, mismatch),
		max:      math.Max(match, mismatch),
	}
	for p, v := range scores {
		if !finite(v) {
			return nil, fmt.Errorf("NewMatrix: pair %q/%q: %w", p[0], p[1], ErrNonFinite)
		}
		k := canonical(p)
		if prev, ok := m.scores[k]; ok && prev != v {
			return nil, fmt.Errorf("NewMatrix: pair %q/%q scored %v and %v: %w", p[0], p[1], prev, v, ErrInvalidBounds)
		}
		m.scores[k] = v
		m.min = math.Min(m.min, v)
		m.max = math.Max(m.max, v)
	}

	return m, nil
}

// Compare implements Substitution[rune].
func (m *Matrix) Compare(a []rune, i int, b []rune, j int) float64 {
	x, y := a[i], b[j]
	if v, ok := m.scores[canonical(Pair{x, y})]; ok {
		return v
	}
	if x == y {
		return m.match
	}

	return m.mismatch
}

// Max implements Bounds.
func (m *Matrix) Max() float64 { return m.max }

// Min implements Bounds.
func (m *Matrix) Min() float64 { return m.min }

// canonical orders the pair so lookups are symmetric.
func canonical(p Pair) Pair {
	if p[0] > p[1] {
		return Pair{p[1], p[0]}
	}

	return p
}
