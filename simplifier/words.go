// SPDX-License-Identifier: MIT
// Package: simlath/simplifier
//
// words.go: word-level simplifiers.

package simplifier

import (
	"strings"
	"unicode"

	"github.com/blevesearch/go-porterstemmer"
)

type wordCharacters struct{}

// WordCharacters replaces every run of characters that are not letters,
// digits, marks or '_' with a single space. Leading and trailing runs are
// dropped: "Hello, world!" becomes "Hello world".
func WordCharacters() Simplifier { return wordCharacters{} }

func (wordCharacters) Simplify(s string) string {
	return strings.Join(strings.FieldsFunc(s, isNonWord), " ")
}

func (wordCharacters) String() string { return "WordCharacters" }

func isNonWord(r rune) bool {
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_')
}

type stemmer struct{}

// Stem lower-cases each whitespace-separated word and reduces it to its
// Porter stem: "running dogs" becomes "run dog". Words are rejoined with a
// single space.
func Stem() Simplifier { return stemmer{} }

func (stemmer) Simplify(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = porterstemmer.StemString(w)
	}
	return strings.Join(words, " ")
}

func (stemmer) String() string { return "Stem[porter]" }
