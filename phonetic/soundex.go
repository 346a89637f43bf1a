package phonetic

import "github.com/katalvlaran/simlath/metric"

// soundexDigits maps A..Z to American Soundex classes. '0' marks vowels
// (and Y), which separate repeated classes; '-' marks H and W, which do not.
var soundexDigits = [26]byte{
	'0', '1', '2', '3', '0', '1', '2', '-', '0', '2', '2', '4', '5',
	'5', '0', '1', '2', '6', '2', '3', '0', '1', '-', '2', '0', '2',
}

// Soundex returns the four-character American Soundex code of s, e.g.
// "Robert" and "Rupert" both encode to "R163". Only ASCII letters are
// considered; input without any yields "".
func Soundex(s string) string {
	var code [4]byte
	n := 0
	var last byte
	for i := 0; i < len(s) && n < len(code); i++ {
		c := s[i] | 0x20 // ASCII lower
		if c < 'a' || c > 'z' {
			continue
		}
		d := soundexDigits[c-'a']
		if n == 0 {
			code[0] = c - 'a' + 'A'
			n, last = 1, d
			continue
		}
		switch {
		case d == '-':
		case d == '0':
			last = d
		case d != last:
			code[n] = d
			n++
			last = d
		}
	}
	if n == 0 {
		return ""
	}
	for ; n < len(code); n++ {
		code[n] = '0'
	}
	return string(code[:])
}

// SoundexMetric scores two strings by the Jaro–Winkler similarity of their
// Soundex codes, so names that sound alike score 1 and near misses keep
// partial credit. Strings without letters have the empty code: two of them
// score 1, one of them against a name scores 0.
type SoundexMetric struct {
	jw metric.JaroWinkler
}

// NewSoundexMetric returns a SoundexMetric with the default Jaro–Winkler
// parameters.
func NewSoundexMetric() SoundexMetric {
	return SoundexMetric{jw: metric.NewJaroWinkler()}
}

// Compare implements metric.StringMetric.
func (m SoundexMetric) Compare(a, b string) float64 {
	return m.jw.Compare(Soundex(a), Soundex(b))
}

func (m SoundexMetric) String() string { return "Soundex" }
