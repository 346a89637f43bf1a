// SPDX-License-Identifier: MIT
// Package: simlath/pipeline
//
// stage.go: stage wrappers and terminals.

package pipeline

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/simlath/metric"
	"github.com/katalvlaran/simlath/simplifier"
	"github.com/katalvlaran/simlath/tokenizer"
)

// Stage is one step of a pipeline.
type Stage interface {
	Kind() StageKind
}

// SimplifierStage wraps a simplifier.Simplifier as a Stage.
type SimplifierStage struct {
	simplifier.Simplifier
}

// Kind implements Stage.
func (SimplifierStage) Kind() StageKind { return KindSimplifier }

func (s SimplifierStage) String() string { return describe(s.Simplifier) }

// TokenizerStage wraps a tokenizer.Tokenizer as a Stage.
type TokenizerStage struct {
	tokenizer.Tokenizer
}

// Kind implements Stage.
func (TokenizerStage) Kind() StageKind { return KindTokenizer }

func (t TokenizerStage) String() string { return describe(t.Tokenizer) }

// Terminal is the metric that closes a pipeline. Create one with Strings,
// Lists, Sets or Multisets.
type Terminal interface {
	Stage
	Input() InputKind

	valid() bool
	compareStrings(a, b string) float64
	compareTokens(a, b []string) float64
}

type terminal struct {
	input    InputKind
	strings  metric.StringMetric
	lists    metric.ListMetric[string]
	sets     metric.SetMetric[string]
	multiset metric.MultisetMetric[string]
}

// Strings terminates a pipeline with a metric over the simplified strings.
func Strings(m metric.StringMetric) Terminal {
	return &terminal{input: InputString, strings: m}
}

// Lists terminates a pipeline with a metric over token lists.
func Lists(m metric.ListMetric[string]) Terminal {
	return &terminal{input: InputList, lists: m}
}

// Sets terminates a pipeline with a metric over the sets of tokens.
func Sets(m metric.SetMetric[string]) Terminal {
	return &terminal{input: InputSet, sets: m}
}

// Multisets terminates a pipeline with a metric over token counts.
func Multisets(m metric.MultisetMetric[string]) Terminal {
	return &terminal{input: InputMultiset, multiset: m}
}

func (t *terminal) Kind() StageKind  { return KindTerminal }
func (t *terminal) Input() InputKind { return t.input }

func (t *terminal) valid() bool {
	switch t.input {
	case InputString:
		return !nilValue(t.strings)
	case InputList:
		return !nilValue(t.lists)
	case InputSet:
		return !nilValue(t.sets)
	case InputMultiset:
		return !nilValue(t.multiset)
	}
	return false
}

func (t *terminal) compareStrings(a, b string) float64 {
	return t.strings.Compare(a, b)
}

func (t *terminal) compareTokens(a, b []string) float64 {
	switch t.input {
	case InputList:
		return t.lists.Compare(a, b)
	case InputSet:
		return t.sets.Compare(metric.SetOf(a), metric.SetOf(b))
	case InputMultiset:
		return t.multiset.Compare(metric.MultisetOf(a), metric.MultisetOf(b))
	}
	return 0
}

func (t *terminal) String() string {
	switch t.input {
	case InputString:
		return "Strings(" + describe(t.strings) + ")"
	case InputList:
		return "Lists(" + describe(t.lists) + ")"
	case InputSet:
		return "Sets(" + describe(t.sets) + ")"
	case InputMultiset:
		return "Multisets(" + describe(t.multiset) + ")"
	}
	return "Terminal(?)"
}

// describe prefers a component's own String method and falls back to its
// type name, so empty structs like metric.Jaccard[string]{} stay readable.
func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}

// isNil reports whether st is nil or wraps a nil component. Typed nil
// pointers, maps and funcs count as nil.
func isNil(st Stage) bool {
	switch s := st.(type) {
	case nil:
		return true
	case SimplifierStage:
		return nilValue(s.Simplifier)
	case TokenizerStage:
		return nilValue(s.Tokenizer)
	case Terminal:
		return nilValue(s) || !s.valid()
	}
	return nilValue(st)
}

func nilValue(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
