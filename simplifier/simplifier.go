// SPDX-License-Identifier: MIT
// Package: simlath/simplifier
//
// simplifier.go: the Simplifier contract, Func and Chain.

package simplifier

import (
	"fmt"
	"strings"
)

// Simplifier transforms a string before comparison.
type Simplifier interface {
	Simplify(s string) string
}

// Func adapts a plain function to Simplifier.
type Func func(s string) string

// Simplify implements Simplifier.
func (f Func) Simplify(s string) string { return f(s) }

func (f Func) String() string { return "Func" }

type chain []Simplifier

// Chain applies simplifiers left to right. An empty chain is the identity.
func Chain(simplifiers ...Simplifier) (Simplifier, error) {
	for i, s := range simplifiers {
		if s == nil {
			return nil, fmt.Errorf("Chain: element %d: %w", i, ErrNilSimplifier)
		}
	}

	return chain(append([]Simplifier(nil), simplifiers...)), nil
}

func (c chain) Simplify(s string) string {
	for _, step := range c {
		s = step.Simplify(s)
	}
	return s
}

func (c chain) String() string {
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = fmt.Sprint(s)
	}
	return "Chain[" + strings.Join(parts, " -> ") + "]"
}
