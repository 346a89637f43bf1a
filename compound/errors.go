package compound

import "errors"

var (
	// ErrNilTokenizer indicates a nil tokenizer.
	ErrNilTokenizer = errors.New("compound: nil tokenizer")

	// ErrInvalidSkew indicates a skew outside [0,1].
	ErrInvalidSkew = errors.New("compound: skew must be within [0,1]")
)
