// SPDX-License-Identifier: MIT
// Package: simlath/tokenizer
//
// tokenizer.go: the Tokenizer contract, Func, Chain and Whitespace.

package tokenizer

import (
	"fmt"
	"strings"
)

// Tokenizer splits a string into tokens.
type Tokenizer interface {
	Tokenize(s string) []string
}

// Func adapts a plain function to Tokenizer.
type Func func(s string) []string

// Tokenize implements Tokenizer.
func (f Func) Tokenize(s string) []string { return f(s) }

func (f Func) String() string { return "Func" }

type whitespace struct{}

// Whitespace splits on runs of Unicode white space.
func Whitespace() Tokenizer { return whitespace{} }

func (whitespace) Tokenize(s string) []string { return strings.Fields(s) }

func (whitespace) String() string { return "Whitespace" }

type chain []Tokenizer

// Chain applies the first tokenizer to the input and every later tokenizer
// to each token produced so far, flattening the results in order.
// A chain of one tokenizer behaves exactly like that tokenizer.
func Chain(tokenizers ...Tokenizer) (Tokenizer, error) {
	if len(tokenizers) == 0 {
		return nil, fmt.Errorf("Chain: no tokenizers: %w", ErrNilTokenizer)
	}
	for i, t := range tokenizers {
		if t == nil {
			return nil, fmt.Errorf("Chain: element %d: %w", i, ErrNilTokenizer)
		}
	}
	if len(tokenizers) == 1 {
		return tokenizers[0], nil
	}

	return chain(append([]Tokenizer(nil), tokenizers...)), nil
}

func (c chain) Tokenize(s string) []string {
	tokens := c[0].Tokenize(s)
	for _, next := range c[1:] {
		var out []string
		for _, tok := range tokens {
			out = append(out, next.Tokenize(tok)...)
		}
		tokens = out
	}
	return tokens
}

func (c chain) String() string {
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = fmt.Sprint(t)
	}
	return "Chain[" + strings.Join(parts, " -> ") + "]"
}
