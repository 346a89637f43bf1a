// SPDX-License-Identifier: MIT
// Package: simlath/tokenizer
//
// qgram.go: overlapping q-grams over grapheme clusters.

package tokenizer

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultPadding is the padding QGramExtended conventionally uses.
const DefaultPadding = "#"

type qgram struct {
	q int
}

// QGram returns the overlapping windows of q user-perceived characters
// (extended grapheme clusters), so "e" plus a combining accent is one
// character. A non-empty input shorter than q yields itself as the single
// token.
//
//	QGram(2).Tokenize("hello") == [he el ll lo]
func QGram(q int) (Tokenizer, error) {
	if q < 1 {
		return nil, fmt.Errorf("QGram: q=%d: %w", q, ErrInvalidQ)
	}
	return qgram{q: q}, nil
}

func (t qgram) Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	clusters := graphemes(s)
	if len(clusters) < t.q {
		return []string{s}
	}

	tokens := make([]string, 0, len(clusters)-t.q+1)
	for i := 0; i+t.q <= len(clusters); i++ {
		tokens = append(tokens, strings.Join(clusters[i:i+t.q], ""))
	}
	return tokens
}

func (t qgram) String() string { return fmt.Sprintf("QGram[q=%d]", t.q) }

func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

type qgramExtended struct {
	qgram
	start, end string
}

// QGramExtended is QGram applied to the input surrounded by q−1 copies of
// start and q−1 copies of end, so leading and trailing characters appear
// in as many q-grams as interior ones.
//
//	QGramExtended(2, "#", "#").Tokenize("ab") == [#a ab b#]
func QGramExtended(q int, start, end string) (Tokenizer, error) {
	if q < 1 {
		return nil, fmt.Errorf("QGramExtended: q=%d: %w", q, ErrInvalidQ)
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("QGramExtended: start=%q end=%q: %w", start, end, ErrEmptyPadding)
	}

	return qgramExtended{
		qgram: qgram{q: q},
		start: strings.Repeat(start, q-1),
		end:   strings.Repeat(end, q-1),
	}, nil
}

func (t qgramExtended) Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	return t.qgram.Tokenize(t.start + s + t.end)
}

func (t qgramExtended) String() string {
	return fmt.Sprintf("QGramExtended[q=%d, start=%q, end=%q]", t.q, t.start, t.end)
}
