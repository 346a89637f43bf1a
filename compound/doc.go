// Package compound provides metrics that combine several simpler metrics
// over the tokens of their inputs.
//
// ChapmanOrderedName compares personal names token by token from the end,
// where surnames usually sit, weighting later tokens more heavily and
// scoring each token pair by the mean of a phonetic (Soundex) and an
// orthographic (Smith–Waterman) similarity.
package compound
