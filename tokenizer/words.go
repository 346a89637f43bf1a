// SPDX-License-Identifier: MIT
// Package: simlath/tokenizer
//
// words.go: UAX #29 word segmentation and BPE sub-word pieces.

package tokenizer

import (
	"fmt"

	"github.com/blevesearch/segment"
	tiktoken "github.com/tiktoken-go/tokenizer"
)

type words struct{}

// Words splits s on Unicode word boundaries and keeps the segments that
// contain letters, numbers, kana or ideographs. "Hello, world!" yields
// [Hello world]; "can't" stays one token.
func Words() Tokenizer { return words{} }

func (words) Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	var tokens []string
	seg := segment.NewWordSegmenterDirect([]byte(s))
	for seg.Segment() {
		if seg.Type() == segment.None {
			continue
		}
		tokens = append(tokens, string(seg.Bytes()))
	}
	return tokens
}

func (words) String() string { return "Words" }

type bpe struct {
	name  tiktoken.Encoding
	codec tiktoken.Codec
}

// BPE splits s into the byte-pair-encoding pieces of the named tiktoken
// vocabulary (e.g. tiktoken.Cl100kBase). Pieces keep their leading space:
// "hello world" yields [hello " world"] under cl100k_base. Text the codec
// cannot encode yields no tokens.
func BPE(encoding tiktoken.Encoding) (Tokenizer, error) {
	codec, err := tiktoken.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("BPE: %q: %w: %v", encoding, ErrUnknownEncoding, err)
	}
	return bpe{name: encoding, codec: codec}, nil
}

func (t bpe) Tokenize(s string) []string {
	if s == "" {
		return nil
	}
	_, tokens, err := t.codec.Encode(s)
	if err != nil {
		return nil
	}
	return tokens
}

func (t bpe) String() string { return fmt.Sprintf("BPE[%s]", t.name) }
