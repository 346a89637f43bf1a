// Package simplifier provides string-to-string transformations applied to
// both inputs before they are compared.
//
// A Simplifier is pure and total: the same input always yields the same
// output and no input is rejected. Built-ins cover case folding
// (Lower, Upper), Unicode normalization (Normalize), accent stripping
// (RemoveDiacritics), punctuation collapsing (WordCharacters) and Porter
// stemming (Stem). Chain composes several simplifiers left to right; Func
// adapts an ordinary function.
//
// Every built-in is safe for concurrent use. Transformers from
// golang.org/x/text keep internal state, so a fresh one is created for
// each call.
package simplifier
