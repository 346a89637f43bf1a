// Package tokenizer splits a simplified string into the tokens consumed by
// list, set and multiset metrics.
//
// A Tokenizer is pure and total, and the empty string always yields no
// tokens. Built-ins:
//
//   - Whitespace: runs of Unicode white space separate tokens.
//   - QGram / QGramExtended: overlapping windows of q grapheme clusters,
//     optionally padded at both ends.
//   - Words: UAX #29 word boundaries, keeping letters, numbers and
//     ideographs and dropping punctuation and spacing.
//   - BPE: byte-pair-encoding pieces of an OpenAI tiktoken vocabulary.
//
// Chain feeds every token of one tokenizer through the next, so
// Chain(Whitespace(), q2) yields the bigrams of each word separately.
package tokenizer
