package align

import "errors"

// Sentinel errors returned by the aligner constructors and the exported
// normalizers. Context is attached with %w; match with errors.Is.
var (
	// ErrInvalidGap indicates a gap value that is NaN, infinite or positive.
	// Gaps are penalties in reward space and must be <= 0.
	ErrInvalidGap = errors.New("align: gap must be a finite value <= 0")

	// ErrNilSubstitution indicates WithSubstitution(nil) was applied.
	ErrNilSubstitution = errors.New("align: nil substitution function")

	// ErrDegenerateBounds indicates that the best and worst possible scores
	// coincide, so no similarity can be derived from them.
	ErrDegenerateBounds = errors.New("align: degenerate score bounds")

	// ErrNegativeLength indicates a negative sequence length passed to a
	// normalizer.
	ErrNegativeLength = errors.New("align: negative sequence length")
)
