// SPDX-License-Identifier: MIT
// Package: simlath/simplifier
//
// errors.go: sentinel errors for the simplifier package.

package simplifier

import "errors"

var (
	// ErrUnknownForm indicates a Unicode normalization form name other than
	// NFC, NFD, NFKC or NFKD.
	ErrUnknownForm = errors.New("simplifier: unknown normalization form")

	// ErrNilSimplifier indicates a nil element passed to Chain.
	ErrNilSimplifier = errors.New("simplifier: nil simplifier")
)
