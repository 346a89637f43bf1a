// SPDX-License-Identifier: MIT
// Package: simlath/tokenizer
//
// errors.go: sentinel errors for the tokenizer package.

package tokenizer

import "errors"

var (
	// ErrInvalidQ indicates a q-gram size below 1.
	ErrInvalidQ = errors.New("tokenizer: q must be >= 1")

	// ErrEmptyPadding indicates an empty start or end padding for
	// QGramExtended.
	ErrEmptyPadding = errors.New("tokenizer: padding must not be empty")

	// ErrUnknownEncoding indicates a BPE vocabulary that is not available.
	ErrUnknownEncoding = errors.New("tokenizer: unknown BPE encoding")

	// ErrNilTokenizer indicates a nil element passed to Chain.
	ErrNilTokenizer = errors.New("tokenizer: nil tokenizer")
)
