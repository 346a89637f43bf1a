// Package pipeline composes simplifiers, tokenizers and a terminal metric
// into a single string comparison.
//
// A comparison runs in three phases:
//
//	input ─▶ simplifiers (in order) ─▶ [tokenizers] ─▶ terminal metric ─▶ [0,1]
//
// Both inputs pass through the same stages independently. The terminal
// decides what it consumes:
//
//   - Strings(m)  : the simplified strings; no tokenizer allowed.
//   - Lists(m)    : token lists, order preserved.
//   - Sets(m)     : distinct tokens.
//   - Multisets(m): token counts.
//
// Builder collects stages fluently and Build validates the whole
// composition at once, so a Pipeline that exists is known to be well
// formed and its Compare never fails:
//
//	p, err := pipeline.NewBuilder(pipeline.WithName("names")).
//		Simplify(simplifier.RemoveDiacritics(), simplifier.Lower(language.Und)).
//		Tokenize(tokenizer.Whitespace()).
//		Build(pipeline.Sets(metric.Jaccard[string]{}))
//
// Options:
//
//   - WithLogger         : zap logger for Build events (default: no-op).
//   - WithName           : label for logs and metrics.
//   - WithSimplifierCache: LRU memoization of simplified inputs.
//   - WithTokenizerCache : LRU memoization of token lists.
//   - WithRegisterer     : Prometheus counters and latency histograms.
//
// None of the options affects a score. Simplifiers and tokenizers must be
// deterministic for the caches to be sound; all built-ins are.
package pipeline
