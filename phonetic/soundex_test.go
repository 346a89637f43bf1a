package phonetic_test

import (
	"testing"

	"github.com/katalvlaran/simlath/phonetic"
	"github.com/stretchr/testify/assert"
)

func TestSoundex(t *testing.T) {
	for in, want := range map[string]string{
		"Robert":   "R163",
		"Rupert":   "R163",
		"Rubin":    "R150",
		"Ashcraft": "A261", // h does not separate s and c
		"Tymczak":  "T522",
		"Pfister":  "P236", // second letter shares the first letter's class
		"Honeyman": "H555",
		"Lee":      "L000",
		"robert":   "R163",
		"Müller":   "M460",
		"a1b2":     "A100",
		"":         "",
		"123 !":    "",
	} {
		assert.Equal(t, want, phonetic.Soundex(in), in)
	}
}

func TestSoundexMetric(t *testing.T) {
	m := phonetic.NewSoundexMetric()

	assert.Equal(t, 1.0, m.Compare("Robert", "Rupert"))
	assert.InDelta(t, 2.0/3.0, m.Compare("Robert", "Rubin"), 1e-9)
	assert.Equal(t, 1.0, m.Compare("", "?"), "both codes empty")
	assert.Equal(t, 0.0, m.Compare("Robert", ""))
	assert.Equal(t, m.Compare("Smith", "Jones"), m.Compare("Jones", "Smith"))
}
