// SPDX-License-Identifier: MIT
// Package: simlath/substitution
//
// errors.go: sentinel errors for the substitution package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach context with fmt.Errorf("<Method>: ...: %w", ErrX).
//   - Compare never fails; all validation happens at construction.

package substitution

import "errors"

// ErrInvalidBounds indicates that the declared maximum is smaller than the
// declared minimum, or that a match reward is lower than a mismatch penalty.
var ErrInvalidBounds = errors.New("substitution: max must not be smaller than min")

// ErrNonFinite indicates a NaN or infinite score was supplied to a constructor.
var ErrNonFinite = errors.New("substitution: score must be finite")

// ErrNilFunc indicates a nil scoring function was passed to NewFunc.
var ErrNilFunc = errors.New("substitution: nil function")
