package trie

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Segmenter splits a word into the key units that label the edges of a trie.
// Implementations must be deterministic and return an empty slice for an
// empty word.
type Segmenter interface {
	Segment(word string) []string
}

// SegmenterFunc adapts a plain function to the Segmenter interface.
type SegmenterFunc func(word string) []string

// Segment calls f(word).
func (f SegmenterFunc) Segment(word string) []string { return f(word) }

// RuneSegmenter uses one key unit per rune. Bytes that are not valid UTF-8
// become key units of their own.
type RuneSegmenter struct{}

// Segment implements Segmenter.
func (RuneSegmenter) Segment(word string) []string {
	keys := make([]string, 0, utf8.RuneCountInString(word))
	for len(word) > 0 {
		_, size := utf8.DecodeRuneInString(word)
		keys = append(keys, word[:size])
		word = word[size:]
	}
	return keys
}

// GraphemeSegmenter uses one key unit per user-perceived character
// (extended grapheme cluster), so "é" or a flag emoji is a single level
// of the trie.
type GraphemeSegmenter struct{}

// Segment implements Segmenter.
func (GraphemeSegmenter) Segment(word string) []string {
	keys := make([]string, 0, len(word))
	graphemes := uniseg.NewGraphemes(word)
	for graphemes.Next() {
		keys = append(keys, graphemes.Str())
	}
	return keys
}

// NormalisingSegmenter rewrites a word before handing it to Inner.
// With StripMarks set, Jürgen and Jurgen share a path. Unless CaseSensitive
// is set, words are case folded.
type NormalisingSegmenter struct {
	Inner         Segmenter
	StripMarks    bool
	CaseSensitive bool
}

// Segment implements Segmenter.
func (s NormalisingSegmenter) Segment(word string) []string {
	if s.StripMarks {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, word); err == nil {
			word = normal
		}
	}
	if !s.CaseSensitive {
		word = cases.Fold().String(word)
	}
	inner := s.Inner
	if inner == nil {
		inner = GraphemeSegmenter{}
	}
	return inner.Segment(word)
}
