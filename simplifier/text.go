// SPDX-License-Identifier: MIT
// Package: simlath/simplifier
//
// text.go: Unicode-aware simplifiers built on golang.org/x/text.

package simplifier

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type caseMapping struct {
	tag   language.Tag
	upper bool
}

// Lower maps s to lower case using the rules of tag (language.Und for
// language-neutral folding). Lower(language.Turkish) maps "I" to "ı".
func Lower(tag language.Tag) Simplifier { return caseMapping{tag: tag} }

// Upper maps s to upper case using the rules of tag.
func Upper(tag language.Tag) Simplifier { return caseMapping{tag: tag, upper: true} }

func (c caseMapping) Simplify(s string) string {
	// Casers are stateful; one per call.
	if c.upper {
		return cases.Upper(c.tag).String(s)
	}
	return cases.Lower(c.tag).String(s)
}

func (c caseMapping) String() string {
	if c.upper {
		return fmt.Sprintf("Upper[%s]", c.tag)
	}
	return fmt.Sprintf("Lower[%s]", c.tag)
}

type normalizer struct {
	form norm.Form
}

// Normalize converts s to the given Unicode normalization form. Apply it
// before tokenizing text that may mix precomposed and decomposed characters.
func Normalize(form norm.Form) Simplifier { return normalizer{form: form} }

func (n normalizer) Simplify(s string) string { return n.form.String(s) }

func (n normalizer) String() string { return "Normalize[" + formName(n.form) + "]" }

// ParseForm resolves "NFC", "NFD", "NFKC" or "NFKD" (case-insensitive).
func ParseForm(name string) (norm.Form, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	}
	return 0, fmt.Errorf("ParseForm: %q: %w", name, ErrUnknownForm)
}

func formName(f norm.Form) string {
	switch f {
	case norm.NFC:
		return "NFC"
	case norm.NFD:
		return "NFD"
	case norm.NFKC:
		return "NFKC"
	case norm.NFKD:
		return "NFKD"
	}
	return "?"
}

type diacritics struct{}

// RemoveDiacritics strips combining marks: "Ångström" becomes "Angstrom".
// The result is in NFC.
func RemoveDiacritics() Simplifier { return diacritics{} }

func (diacritics) Simplify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func (diacritics) String() string { return "RemoveDiacritics" }
