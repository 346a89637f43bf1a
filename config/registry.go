package config

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	tiktoken "github.com/tiktoken-go/tokenizer"
	"golang.org/x/text/language"

	"github.com/katalvlaran/simlath/align"
	"github.com/katalvlaran/simlath/compound"
	"github.com/katalvlaran/simlath/metric"
	"github.com/katalvlaran/simlath/phonetic"
	"github.com/katalvlaran/simlath/pipeline"
	"github.com/katalvlaran/simlath/simplifier"
	"github.com/katalvlaran/simlath/substitution"
	"github.com/katalvlaran/simlath/tokenizer"
)

// SimplifierFactory creates a simplifier from its parameters.
type SimplifierFactory func(p Params) (simplifier.Simplifier, error)

// TokenizerFactory creates a tokenizer from its parameters.
type TokenizerFactory func(p Params) (tokenizer.Tokenizer, error)

// TerminalFactory creates a terminal from its parameters. tokenized
// reports whether the configuration declares tokenizers, so a metric that
// works on both strings and token lists can pick its input.
type TerminalFactory func(p Params, tokenized bool) (pipeline.Terminal, error)

// Registry maps stage type names to factories. It is safe for concurrent
// use.
type Registry struct {
	mu          sync.RWMutex
	simplifiers map[string]SimplifierFactory
	tokenizers  map[string]TokenizerFactory
	metrics     map[string]TerminalFactory
}

// NewRegistry returns a registry holding every built-in stage.
func NewRegistry() *Registry {
	r := &Registry{
		simplifiers: map[string]SimplifierFactory{
			"lower":             caseFactory(simplifier.Lower),
			"upper":             caseFactory(simplifier.Upper),
			"remove_diacritics": fixed(simplifier.RemoveDiacritics()),
			"word_characters":   fixed(simplifier.WordCharacters()),
			"stem":              fixed(simplifier.Stem()),
			"normalize": func(p Params) (simplifier.Simplifier, error) {
				form, err := simplifier.ParseForm(p.String("form", "NFC"))
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
				}
				return simplifier.Normalize(form), nil
			},
		},
		tokenizers: map[string]TokenizerFactory{
			"whitespace": func(Params) (tokenizer.Tokenizer, error) { return tokenizer.Whitespace(), nil },
			"words":      func(Params) (tokenizer.Tokenizer, error) { return tokenizer.Words(), nil },
			"qgram": func(p Params) (tokenizer.Tokenizer, error) {
				q, err := p.Int("q", 2)
				if err != nil {
					return nil, err
				}
				return wrapParam(tokenizer.QGram(q))
			},
			"qgram_extended": func(p Params) (tokenizer.Tokenizer, error) {
				q, err := p.Int("q", 2)
				if err != nil {
					return nil, err
				}
				return wrapParam(tokenizer.QGramExtended(q,
					p.String("start", tokenizer.DefaultPadding),
					p.String("end", tokenizer.DefaultPadding)))
			},
			"bpe": func(p Params) (tokenizer.Tokenizer, error) {
				return wrapParam(tokenizer.BPE(tiktoken.Encoding(p.String("encoding", string(tiktoken.Cl100kBase)))))
			},
		},
		metrics: map[string]TerminalFactory{
			"equality": func(_ Params, tokenized bool) (pipeline.Terminal, error) {
				if tokenized {
					return pipeline.Lists(metric.ListEquality[string]{}), nil
				}
				return pipeline.Strings(metric.StringEquality{}), nil
			},
			"needleman_wunsch": alignmentFactory(-2, newNeedlemanWunschTerminal),
			"smith_waterman":   alignmentFactory(-0.5, newSmithWatermanTerminal),
			"jaro_winkler":     stringTerminal(metric.NewJaroWinkler()),
			"soundex":          stringTerminal(phonetic.NewSoundexMetric()),
			"chapman": func(p Params, _ bool) (pipeline.Terminal, error) {
				skew, err := p.Float("skew", compound.DefaultSkew)
				if err != nil {
					return nil, err
				}
				c, err := compound.NewChapmanOrderedName(tokenizer.Whitespace(), compound.WithSkew(skew))
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
				}
				return pipeline.Strings(c), nil
			},
			"jaccard":        setTerminal(metric.Jaccard[string]{}),
			"dice":           setTerminal(metric.Dice[string]{}),
			"overlap":        setTerminal(metric.Overlap[string]{}),
			"cosine":         multisetTerminal(metric.CosineSimilarity[string]{}),
			"block_distance": multisetTerminal(metric.BlockDistance[string]{}),
			"simon_white":    multisetTerminal(metric.SimonWhite[string]{}),
		},
	}
	return r
}

// RegisterSimplifier adds a simplifier type.
func (r *Registry) RegisterSimplifier(name string, f SimplifierFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.simplifiers, name, f)
}

// RegisterTokenizer adds a tokenizer type.
func (r *Registry) RegisterTokenizer(name string, f TokenizerFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.tokenizers, name, f)
}

// RegisterMetric adds a terminal metric type.
func (r *Registry) RegisterMetric(name string, f TerminalFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return register(r.metrics, name, f)
}

func register[F any](m map[string]F, name string, f F) error {
	if _, ok := m[name]; ok {
		return fmt.Errorf("%q: %w", name, ErrDuplicateStage)
	}
	m[name] = f
	return nil
}

// Names lists the registered simplifier, tokenizer and metric types, each
// sorted.
func (r *Registry) Names() (simplifiers, tokenizers, metrics []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.simplifiers), sortedKeys(r.tokenizers), sortedKeys(r.metrics)
}

func sortedKeys[F any](m map[string]F) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Build resolves every stage of cfg and builds the pipeline. Name and
// cache sizes from cfg are applied after opts. A nil cfg has no metric.
func (r *Registry) Build(cfg *Config, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	if cfg == nil || cfg.Metric.Type == "" {
		return nil, ErrMissingMetric
	}
	if cfg.Cache.Simplifier < 0 || cfg.Cache.Tokenizer < 0 {
		return nil, fmt.Errorf("cache sizes %d/%d: %w", cfg.Cache.Simplifier, cfg.Cache.Tokenizer, ErrInvalidParam)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	simplifiers := make([]simplifier.Simplifier, len(cfg.Simplifiers))
	for i, spec := range cfg.Simplifiers {
		f, ok := r.simplifiers[spec.Type]
		if !ok {
			return nil, fmt.Errorf("simplifier %d %q: %w", i, spec.Type, ErrUnknownStage)
		}
		s, err := f(spec.Params)
		if err != nil {
			return nil, fmt.Errorf("simplifier %d %q: %w", i, spec.Type, err)
		}
		simplifiers[i] = s
	}

	tokenizers := make([]tokenizer.Tokenizer, len(cfg.Tokenizers))
	for i, spec := range cfg.Tokenizers {
		f, ok := r.tokenizers[spec.Type]
		if !ok {
			return nil, fmt.Errorf("tokenizer %d %q: %w", i, spec.Type, ErrUnknownStage)
		}
		t, err := f(spec.Params)
		if err != nil {
			return nil, fmt.Errorf("tokenizer %d %q: %w", i, spec.Type, err)
		}
		tokenizers[i] = t
	}

	f, ok := r.metrics[cfg.Metric.Type]
	if !ok {
		return nil, fmt.Errorf("metric %q: %w", cfg.Metric.Type, ErrUnknownStage)
	}
	term, err := f(cfg.Metric.Params, len(tokenizers) > 0)
	if err != nil {
		return nil, fmt.Errorf("metric %q: %w", cfg.Metric.Type, err)
	}

	opts = append(opts[:len(opts):len(opts)],
		pipeline.WithName(cfg.Name),
		pipeline.WithSimplifierCache(cfg.Cache.Simplifier),
		pipeline.WithTokenizerCache(cfg.Cache.Tokenizer),
	)
	b := pipeline.NewBuilder(opts...).Simplify(simplifiers...)
	if len(tokenizers) > 0 {
		b = b.Tokenize(tokenizers...)
	}
	return b.Build(term)
}

// Build builds cfg with the built-in registry.
func Build(cfg *Config, opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	return NewRegistry().Build(cfg, opts...)
}

// String returns p[key], or def when absent.
func (p Params) String(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

// Int parses p[key] as an integer, or returns def when absent.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidParam)
	}
	return n, nil
}

// Float parses p[key] as a float, or returns def when absent.
func (p Params) Float(key string, def float64) (float64, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", key, v, ErrInvalidParam)
	}
	return f, nil
}

func fixed(s simplifier.Simplifier) SimplifierFactory {
	return func(Params) (simplifier.Simplifier, error) { return s, nil }
}

func caseFactory(mk func(language.Tag) simplifier.Simplifier) SimplifierFactory {
	return func(p Params) (simplifier.Simplifier, error) {
		tag := language.Und
		if v, ok := p["lang"]; ok {
			var err error
			if tag, err = language.Parse(v); err != nil {
				return nil, fmt.Errorf("lang=%q: %w", v, ErrInvalidParam)
			}
		}
		return mk(tag), nil
	}
}

func wrapParam(t tokenizer.Tokenizer, err error) (tokenizer.Tokenizer, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}
	return t, nil
}

func stringTerminal(m metric.StringMetric) TerminalFactory {
	return func(Params, bool) (pipeline.Terminal, error) { return pipeline.Strings(m), nil }
}

func setTerminal(m metric.SetMetric[string]) TerminalFactory {
	return func(Params, bool) (pipeline.Terminal, error) { return pipeline.Sets(m), nil }
}

func multisetTerminal(m metric.MultisetMetric[string]) TerminalFactory {
	return func(Params, bool) (pipeline.Terminal, error) { return pipeline.Multisets(m), nil }
}

// alignParams holds the parsed parameters shared by both aligners.
type alignParams struct {
	gap             float64
	match, mismatch *float64
}

func alignmentFactory(defaultGap float64, mk func(alignParams, bool) (pipeline.Terminal, error)) TerminalFactory {
	return func(p Params, tokenized bool) (pipeline.Terminal, error) {
		var ap alignParams
		var err error
		if ap.gap, err = p.Float("gap", defaultGap); err != nil {
			return nil, err
		}
		_, hasMatch := p["match"]
		_, hasMismatch := p["mismatch"]
		if hasMatch != hasMismatch {
			return nil, fmt.Errorf("match and mismatch go together: %w", ErrInvalidParam)
		}
		if hasMatch {
			match, err := p.Float("match", 0)
			if err != nil {
				return nil, err
			}
			mismatch, err := p.Float("mismatch", 0)
			if err != nil {
				return nil, err
			}
			ap.match, ap.mismatch = &match, &mismatch
		}
		term, err := mk(ap, tokenized)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
		}
		return term, nil
	}
}

func alignOptions[T comparable](ap alignParams) ([]align.Option[T], error) {
	opts := []align.Option[T]{align.WithGap[T](ap.gap)}
	if ap.match != nil {
		sub, err := substitution.NewMatchMismatch[T](*ap.match, *ap.mismatch)
		if err != nil {
			return nil, err
		}
		opts = append(opts, align.WithSubstitution[T](sub))
	}
	return opts, nil
}

func newNeedlemanWunschTerminal(ap alignParams, tokenized bool) (pipeline.Terminal, error) {
	if tokenized {
		opts, err := alignOptions[string](ap)
		if err != nil {
			return nil, err
		}
		nw, err := align.NewNeedlemanWunsch[string](opts...)
		if err != nil {
			return nil, err
		}
		return pipeline.Lists(nw), nil
	}
	opts, err := alignOptions[rune](ap)
	if err != nil {
		return nil, err
	}
	nw, err := align.NewNeedlemanWunsch[rune](opts...)
	if err != nil {
		return nil, err
	}
	m, err := metric.Runes(nw)
	if err != nil {
		return nil, err
	}
	return pipeline.Strings(m), nil
}

func newSmithWatermanTerminal(ap alignParams, tokenized bool) (pipeline.Terminal, error) {
	if tokenized {
		opts, err := alignOptions[string](ap)
		if err != nil {
			return nil, err
		}
		sw, err := align.NewSmithWaterman[string](opts...)
		if err != nil {
			return nil, err
		}
		return pipeline.Lists(sw), nil
	}
	opts, err := alignOptions[rune](ap)
	if err != nil {
		return nil, err
	}
	sw, err := align.NewSmithWaterman[rune](opts...)
	if err != nil {
		return nil, err
	}
	m, err := metric.Runes(sw)
	if err != nil {
		return nil, err
	}
	return pipeline.Strings(m), nil
}
