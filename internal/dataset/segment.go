package dataset

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"golang.org/x/text/unicode/norm"
)

// Segmenter splits raw text into the symbols a vocabulary counts.
type Segmenter interface {
	Segment(text string) []string
}

// Chars returns a segmenter that yields one symbol per code point,
// after NFC normalization. This is the usual choice for character-level
// transduction data.
func Chars() Segmenter {
	return charSegmenter{}
}

// Split returns a segmenter that splits on sep and drops empty pieces.
func Split(sep string) Segmenter {
	return sepSegmenter{sep: sep}
}

// Subwords returns a segmenter backed by a tiktoken BPE encoding
// (e.g. "cl100k_base"). Each subword piece becomes one symbol; the
// vocabulary index assigns its own identifiers on top.
func Subwords(encodingName string) (Segmenter, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}
	return &subwordSegmenter{encoding: encoding}, nil
}

type charSegmenter struct{}

func (charSegmenter) Segment(text string) []string {
	text = norm.NFC.String(text)
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}

type sepSegmenter struct {
	sep string
}

func (s sepSegmenter) Segment(text string) []string {
	parts := strings.Split(text, s.sep)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

type subwordSegmenter struct {
	encoding *tiktoken.Tiktoken
}

func (s *subwordSegmenter) Segment(text string) []string {
	ids := s.encoding.Encode(text, nil, nil)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = s.encoding.Decode([]int{id})
	}
	return out
}
