package metric

// JaroWinkler is the Jaro similarity with the Winkler common-prefix boost,
// computed over code points.
//
// Jaro counts matching runes (equal and no further apart than
// max(|a|,|b|)/2 − 1) and half-transpositions t:
//
//	jaro = (m/|a| + m/|b| + (m − t/2)/m) / 3
//
// When jaro exceeds BoostThreshold it is boosted by the length ℓ of the
// common prefix (capped at MaxPrefix): jaro + ℓ·PrefixScale·(1 − jaro).
type JaroWinkler struct {
	BoostThreshold float64
	PrefixScale    float64
	MaxPrefix      int
}

// NewJaroWinkler returns the conventional parameters: threshold 0.7, prefix
// scale 0.1, prefix length 4.
func NewJaroWinkler() JaroWinkler {
	return JaroWinkler{BoostThreshold: 0.7, PrefixScale: 0.1, MaxPrefix: 4}
}

// Compare implements StringMetric.
func (jw JaroWinkler) Compare(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	j := jaro(ra, rb)
	if j <= jw.BoostThreshold {
		return j
	}
	prefix := 0
	for prefix < min(len(ra), len(rb), jw.MaxPrefix) && ra[prefix] == rb[prefix] {
		prefix++
	}

	return clamp01(j + float64(prefix)*jw.PrefixScale*(1-j))
}

func jaro(a, b []rune) float64 {
	window := max(len(a), len(b))/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, len(a))
	matchedB := make([]bool, len(b))
	matches := 0
	for i := range a {
		lo, hi := max(0, i-window), min(len(b), i+window+1)
		for k := lo; k < hi; k++ {
			if matchedB[k] || a[i] != b[k] {
				continue
			}
			matchedA[i], matchedB[k] = true, true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	halfTranspositions := 0
	k := 0
	for i := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if a[i] != b[k] {
			halfTranspositions++
		}
		k++
	}

	m := float64(matches)
	return (m/float64(len(a)) + m/float64(len(b)) + (m-float64(halfTranspositions)/2)/m) / 3
}
