// SPDX-License-Identifier: MIT
// Package: simlath/pipeline
//
// pipeline.go: the built, immutable comparison pipeline.

package pipeline

import (
	"slices"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/simlath/simplifier"
	"github.com/katalvlaran/simlath/tokenizer"
)

// Pipeline is a validated composition of simplifiers, tokenizers and a
// terminal metric. It is immutable and safe for concurrent use provided
// its components are.
type Pipeline struct {
	name        string
	simplifiers []simplifier.Simplifier
	tokenizers  []tokenizer.Tokenizer
	term        Terminal

	simplifier simplifier.Simplifier // nil when there are no simplifiers
	tokenizer  tokenizer.Tokenizer   // nil for string terminals

	simplified *lru.Cache[string, string]
	tokens     *lru.Cache[string, []string]
	metrics    *instruments
}

// Compare simplifies a and b independently, tokenizes them when the
// terminal consumes tokens, and returns the terminal's score in [0,1].
func (p *Pipeline) Compare(a, b string) float64 {
	if p.metrics != nil {
		start := time.Now()
		defer func() {
			p.metrics.comparisons.Inc()
			p.metrics.duration.Observe(time.Since(start).Seconds())
		}()
	}

	a, b = p.simplify(a), p.simplify(b)
	if p.term.Input() == InputString {
		return p.term.compareStrings(a, b)
	}

	return p.term.compareTokens(p.tokenize(a), p.tokenize(b))
}

// Name returns the label given with WithName.
func (p *Pipeline) Name() string { return p.name }

// Input returns the input kind of the terminal.
func (p *Pipeline) Input() InputKind { return p.term.Input() }

func (p *Pipeline) simplify(s string) string {
	if p.simplifier == nil {
		return s
	}
	if p.simplified == nil {
		return p.simplifier.Simplify(s)
	}
	if v, ok := p.simplified.Get(s); ok {
		p.metrics.cacheLookup(cacheSimplifier, true)
		return v
	}
	p.metrics.cacheLookup(cacheSimplifier, false)
	v := p.simplifier.Simplify(s)
	p.simplified.Add(s, v)
	return v
}

// tokenize hands out a private copy of cached tokens so a terminal can
// never corrupt the cache.
func (p *Pipeline) tokenize(s string) []string {
	if p.tokens == nil {
		return p.tokenizer.Tokenize(s)
	}
	if v, ok := p.tokens.Get(s); ok {
		p.metrics.cacheLookup(cacheTokenizer, true)
		return slices.Clone(v)
	}
	p.metrics.cacheLookup(cacheTokenizer, false)
	v := p.tokenizer.Tokenize(s)
	p.tokens.Add(s, slices.Clone(v))
	return v
}

// String renders the composition, e.g.
// "Pipeline[Lower[und] -> Whitespace -> Sets(metric.Jaccard[string])]".
func (p *Pipeline) String() string {
	parts := make([]string, 0, len(p.simplifiers)+len(p.tokenizers)+1)
	for _, s := range p.simplifiers {
		parts = append(parts, describe(s))
	}
	for _, t := range p.tokenizers {
		parts = append(parts, describe(t))
	}
	parts = append(parts, describe(p.term))
	return "Pipeline[" + strings.Join(parts, " -> ") + "]"
}
