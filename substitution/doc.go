// Package substitution defines the scoring functions used by the aligners
// in package align to price the pairing of two symbols.
//
// A substitution function is asked "what is it worth to place a[i] against
// b[j]?" and answers with a score in reward space: higher means a better
// pairing. Alongside Compare every function declares two constants, Max and
// Min, which bound every value Compare can ever return.
//
// The bounds are part of the contract, not documentation:
//
//	Min() <= Compare(a, i, b, j) <= Max()   for every a, b, i, j
//
// The aligners derive the best and worst possible alignment score of two
// sequences from Max and Min, and that derivation is what keeps similarities
// inside [0,1]. A function that returns values outside its declared bounds is
// out of contract and the resulting similarity is undefined.
//
// Built-in functions:
//   - MatchMismatch: constant reward for equal symbols, constant penalty otherwise.
//   - Func         : any pure function together with its declared bounds.
//   - Matrix       : a rune-pair score table with match/mismatch fallbacks.
//
// All built-ins are immutable values and safe for concurrent use.
package substitution
