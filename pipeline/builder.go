// SPDX-License-Identifier: MIT
// Package: simlath/pipeline
//
// builder.go: fluent composition and Build-time validation.

package pipeline

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/simlath/simplifier"
	"github.com/katalvlaran/simlath/tokenizer"
)

// Builder accumulates stages in call order. Every method returns a new
// Builder, so a shared prefix can be extended in several directions:
//
//	base := pipeline.NewBuilder().Simplify(simplifier.Lower(language.Und))
//	exact, _ := base.Build(pipeline.Strings(metric.StringEquality{}))
//	words, _ := base.Tokenize(tokenizer.Whitespace()).Build(pipeline.Sets(metric.Jaccard[string]{}))
//
// Mistakes (nil stages, bad ordering) are not reported until Build.
type Builder struct {
	opts   []Option
	stages []Stage
}

// NewBuilder starts an empty pipeline.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{opts: slices.Clone(opts)}
}

// Simplify appends simplifiers, applied in order to both inputs.
func (b *Builder) Simplify(s ...simplifier.Simplifier) *Builder {
	stages := make([]Stage, len(s))
	for i := range s {
		stages[i] = SimplifierStage{s[i]}
	}
	return b.Then(stages...)
}

// Tokenize appends tokenizers. The first splits the simplified string;
// each later one re-tokenizes every token of the previous.
func (b *Builder) Tokenize(t ...tokenizer.Tokenizer) *Builder {
	stages := make([]Stage, len(t))
	for i := range t {
		stages[i] = TokenizerStage{t[i]}
	}
	return b.Then(stages...)
}

// Then appends arbitrary stages. A KindSimplifier stage must implement
// simplifier.Simplifier and a KindTokenizer stage tokenizer.Tokenizer.
func (b *Builder) Then(stages ...Stage) *Builder {
	next := &Builder{
		opts:   b.opts,
		stages: make([]Stage, 0, len(b.stages)+len(stages)),
	}
	next.stages = append(next.stages, b.stages...)
	next.stages = append(next.stages, stages...)
	return next
}

// Build validates the composition and returns an immutable Pipeline
// closed by term.
//
// Errors (wrapped with "Build: "):
//   - ErrNilStage           : a nil stage, component or terminal metric.
//   - ErrStageKind          : a stage whose Kind its type does not honor.
//   - ErrStageOrder         : a simplifier after a tokenizer, or a terminal
//     among the stages.
//   - ErrMissingTokenizer   : a list, set or multiset terminal with no
//     tokenizer.
//   - ErrUnexpectedTokenizer: a string terminal after a tokenizer.
//   - ErrInstrumentation    : collectors could not be registered.
func (b *Builder) Build(term Terminal) (*Pipeline, error) {
	cfg := newPipelineConfig(b.opts...)
	p, err := b.build(cfg, term)
	if err != nil {
		cfg.logger.Warn("pipeline rejected",
			zap.String("pipeline", cfg.name),
			zap.Error(err),
		)
		return nil, err
	}
	cfg.logger.Debug("pipeline built",
		zap.String("pipeline", cfg.name),
		zap.Stringer("composition", p),
		zap.Int("simplifier_cache", cfg.simplifierCache),
		zap.Int("tokenizer_cache", cfg.tokenizerCache),
	)
	return p, nil
}

func (b *Builder) build(cfg pipelineConfig, term Terminal) (*Pipeline, error) {
	if term == nil || isNil(term) {
		return nil, fmt.Errorf("%s: terminal: %w", MethodBuild, ErrNilStage)
	}

	var (
		simplifiers []simplifier.Simplifier
		tokenizers  []tokenizer.Tokenizer
	)
	for i, st := range b.stages {
		if isNil(st) {
			return nil, fmt.Errorf("%s: stage %d: %w", MethodBuild, i, ErrNilStage)
		}
		switch st.Kind() {
		case KindSimplifier:
			if len(tokenizers) > 0 {
				return nil, fmt.Errorf("%s: stage %d: simplifier after tokenizer: %w", MethodBuild, i, ErrStageOrder)
			}
			s, ok := st.(simplifier.Simplifier)
			if !ok {
				return nil, fmt.Errorf("%s: stage %d: %T is not a simplifier: %w", MethodBuild, i, st, ErrStageKind)
			}
			simplifiers = append(simplifiers, s)
		case KindTokenizer:
			t, ok := st.(tokenizer.Tokenizer)
			if !ok {
				return nil, fmt.Errorf("%s: stage %d: %T is not a tokenizer: %w", MethodBuild, i, st, ErrStageKind)
			}
			tokenizers = append(tokenizers, t)
		default:
			return nil, fmt.Errorf("%s: stage %d: %s stage before Build: %w", MethodBuild, i, st.Kind(), ErrStageOrder)
		}
	}

	switch {
	case term.Input() == InputString && len(tokenizers) > 0:
		return nil, fmt.Errorf("%s: %w", MethodBuild, ErrUnexpectedTokenizer)
	case term.Input() != InputString && len(tokenizers) == 0:
		return nil, fmt.Errorf("%s: %s terminal: %w", MethodBuild, term.Input(), ErrMissingTokenizer)
	}

	p := &Pipeline{
		name:        cfg.name,
		simplifiers: simplifiers,
		tokenizers:  tokenizers,
		term:        term,
	}
	// Chain and lru.New cannot fail here: components are non-nil and sizes
	// positive.
	if len(simplifiers) > 0 {
		p.simplifier, _ = simplifier.Chain(simplifiers...)
	}
	if len(tokenizers) > 0 {
		p.tokenizer, _ = tokenizer.Chain(tokenizers...)
	}
	if cfg.simplifierCache > 0 && p.simplifier != nil {
		p.simplified, _ = lru.New[string, string](cfg.simplifierCache)
	}
	if cfg.tokenizerCache > 0 && p.tokenizer != nil {
		p.tokens, _ = lru.New[string, []string](cfg.tokenizerCache)
	}
	if cfg.registerer != nil {
		in, err := newInstruments(cfg.registerer, cfg.name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
		p.metrics = in
	}

	return p, nil
}
