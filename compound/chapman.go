package compound

import (
	"fmt"
	"math"

	"github.com/katalvlaran/simlath/align"
	"github.com/katalvlaran/simlath/metric"
	"github.com/katalvlaran/simlath/phonetic"
	"github.com/katalvlaran/simlath/tokenizer"
)

// DefaultSkew is the weight shift toward the last tokens.
const DefaultSkew = 1.0

// Option configures a ChapmanOrderedName.
type Option func(*ChapmanOrderedName)

// WithSkew sets how strongly later tokens outweigh earlier ones; 0 weighs
// every compared pair equally.
func WithSkew(skew float64) Option {
	return func(c *ChapmanOrderedName) { c.skew = skew }
}

// WithTokenMetric replaces the orthographic half of the per-token score
// (default: Smith–Waterman over code points with its default parameters).
func WithTokenMetric(m metric.StringMetric) Option {
	return func(c *ChapmanOrderedName) { c.orthographic = m }
}

// ChapmanOrderedName: ordered name similarity
//
// Description:
//
//	Tokenizes both names and pairs the last k = min(|a|, |b|) tokens from
//	the end. Pair i (1 = last) scores
//
//	    s_i = (soundex(a_i, b_i) + orthographic(a_i, b_i)) / 2
//
//	and contributes with weight
//
//	    w_i = 1/k + ((k − i) + 0.5 − k/2) / k · skew / k
//
//	The weights sum to 1 for every k, so the result stays in [0,1].
//	Tokens beyond the shorter name are ignored: "John Smith" against
//	"Smith" scores 1.
//
// Two names without tokens score 1; exactly one such name scores 0.
type ChapmanOrderedName struct {
	tok          tokenizer.Tokenizer
	skew         float64
	phonetic     metric.StringMetric
	orthographic metric.StringMetric
}

// NewChapmanOrderedName builds the metric over tok (usually
// tokenizer.Whitespace()).
func NewChapmanOrderedName(tok tokenizer.Tokenizer, opts ...Option) (*ChapmanOrderedName, error) {
	if tok == nil {
		return nil, fmt.Errorf("NewChapmanOrderedName: %w", ErrNilTokenizer)
	}
	c := &ChapmanOrderedName{
		tok:      tok,
		skew:     DefaultSkew,
		phonetic: phonetic.NewSoundexMetric(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if math.IsNaN(c.skew) || c.skew < 0 || c.skew > 1 {
		return nil, fmt.Errorf("NewChapmanOrderedName: skew=%v: %w", c.skew, ErrInvalidSkew)
	}
	if c.orthographic == nil {
		sw, err := align.NewSmithWaterman[rune]()
		if err != nil {
			return nil, fmt.Errorf("NewChapmanOrderedName: %w", err)
		}
		if c.orthographic, err = metric.Runes(sw); err != nil {
			return nil, fmt.Errorf("NewChapmanOrderedName: %w", err)
		}
	}

	return c, nil
}

// Compare implements metric.StringMetric.
func (c *ChapmanOrderedName) Compare(a, b string) float64 {
	ta, tb := c.tok.Tokenize(a), c.tok.Tokenize(b)
	switch {
	case len(ta) == 0 && len(tb) == 0:
		return 1
	case len(ta) == 0 || len(tb) == 0:
		return 0
	}

	k := min(len(ta), len(tb))
	fk := float64(k)
	sum := 0.0
	for i := 1; i <= k; i++ {
		weight := 1/fk + ((fk-float64(i))+0.5-fk/2)/fk*c.skew/fk
		x, y := ta[len(ta)-i], tb[len(tb)-i]
		sum += 0.5 * (c.phonetic.Compare(x, y) + c.orthographic.Compare(x, y)) * weight
	}

	return math.Max(0, math.Min(1, sum))
}

func (c *ChapmanOrderedName) String() string {
	return fmt.Sprintf("ChapmanOrderedName[tokenizer=%v, skew=%g]", c.tok, c.skew)
}
