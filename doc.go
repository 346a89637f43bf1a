// Package simlath measures how alike two strings or token sequences are,
// as a score in [0,1].
//
// 🚀 What is simlath?
//
//	A toolkit of bounded similarity metrics and the plumbing to compose them:
//		• Sequence alignment: Needleman–Wunsch (global), Smith–Waterman (local)
//		• Substitution functions: match/mismatch, rune-pair matrices, custom
//		• Collection metrics: Jaccard, Dice, Overlap, Cosine, Block distance,
//		  Simon–White, equality
//		• String metrics: Jaro–Winkler, Soundex, Chapman ordered names
//		• Simplifiers: case folding, Unicode normalization, diacritics,
//		  punctuation, Porter stemming
//		• Tokenizers: whitespace, grapheme q-grams, UAX #29 words, BPE pieces
//		• Pipelines: simplify → tokenize → score, validated at build time,
//		  with LRU caches, zap logging and Prometheus metrics
//		• Declarative configuration: YAML files with environment overrides
//
// ✨ Guarantees
//
//   - Every score lies in [0,1]; identical inputs score 1.
//   - Every metric is symmetric for symmetric substitution functions.
//   - Built values are immutable and safe for concurrent use.
//   - Configuration mistakes surface as sentinel errors at construction,
//     never as panics or failures during Compare.
//
// Under the hood:
//
//	substitution/:  symbol pair scoring and its bounds
//	align/:         Needleman–Wunsch, Smith–Waterman and score normalization
//	metric/:        string, list, set and multiset metrics
//	phonetic/:      Soundex encoding and metric
//	compound/:      Chapman ordered-name similarity
//	simplifier/:    string preprocessing
//	tokenizer/:     string splitting
//	pipeline/:      composition, caching, logging, instrumentation
//	config/:        YAML + environment driven pipelines
//
// Quick example:
//
//	p, _ := pipeline.NewBuilder().
//		Simplify(simplifier.Lower(language.Und)).
//		Build(pipeline.Strings(metric.StringEquality{}))
//	p.Compare("ABC", "abc") // 1
//	p.Compare("ABC", "abd") // 0
//
//	go get github.com/katalvlaran/simlath
package simlath
