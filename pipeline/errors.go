// SPDX-License-Identifier: MIT
// Package: simlath/pipeline
//
// errors.go: sentinel errors for the pipeline package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Build attaches context with %w ("Build: stage 2: ...").
//   • Every composition mistake is reported by Build; a built Pipeline
//     never fails and never panics on Compare.
//   • Option constructors (WithX) panic on meaningless values such as a
//     nil logger or a negative cache size.

package pipeline

import "errors"

// ErrNilStage indicates a nil simplifier, tokenizer, terminal or terminal
// metric handed to the builder, typed nil pointers included.
var ErrNilStage = errors.New("pipeline: nil stage")

// ErrStageOrder indicates a simplifier placed after a tokenizer, or a
// terminal placed anywhere but in Build.
var ErrStageOrder = errors.New("pipeline: stages out of order")

// ErrStageKind indicates a stage whose Kind does not match the interface
// it implements, e.g. KindTokenizer on a value that cannot tokenize.
var ErrStageKind = errors.New("pipeline: stage kind does not match its type")

// ErrMissingTokenizer indicates a list, set or multiset terminal with no
// tokenizer to produce its tokens.
var ErrMissingTokenizer = errors.New("pipeline: terminal requires a tokenizer")

// ErrUnexpectedTokenizer indicates a string terminal preceded by a
// tokenizer whose output it could not consume.
var ErrUnexpectedTokenizer = errors.New("pipeline: string terminal cannot follow a tokenizer")

// ErrInstrumentation indicates that the pipeline collectors could not be
// registered with the configured prometheus.Registerer.
var ErrInstrumentation = errors.New("pipeline: metrics registration failed")
