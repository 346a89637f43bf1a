// Package config builds pipelines from declarative YAML with environment
// overrides.
//
// A minimal file:
//
//	name: names
//	simplifiers: [remove_diacritics, lower]
//	tokenizers:
//	  - whitespace
//	  - {type: qgram, q: 2}
//	metric: jaccard
//	cache:
//	  simplifier: 1024
//	  tokenizer: 1024
//	log:
//	  level: info
//	  format: json
//
// Stages are named by type; a mapping entry carries parameters next to
// "type". Names resolve through a Registry, which ships every built-in
// simplifier, tokenizer and metric and accepts custom factories.
//
// After loading, ApplyEnv overlays SIMLATH_NAME, SIMLATH_SIMPLIFIER_CACHE,
// SIMLATH_TOKENIZER_CACHE, SIMLATH_LOG_LEVEL and SIMLATH_LOG_FORMAT (for
// prefix "SIMLATH"). Unset variables leave the file's values alone.
package config
