package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmenters(t *testing.T) {
	t.Run("Runes", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "ç"}, RuneSegmenter{}.Segment("abç"))
		assert.Empty(t, RuneSegmenter{}.Segment(""))
	})

	t.Run("Invalid UTF-8 is kept byte-wise", func(t *testing.T) {
		assert.Equal(t, []string{"a", "\xff", "b"}, RuneSegmenter{}.Segment("a\xffb"))
	})

	t.Run("Graphemes", func(t *testing.T) {
		// e followed by a combining acute accent, and a flag made of two
		// regional indicators.
		word := "e\u0301\U0001F1E9\U0001F1EAx"
		assert.Equal(t, []string{"e\u0301", "\U0001F1E9\U0001F1EA", "x"}, GraphemeSegmenter{}.Segment(word))
		assert.Len(t, RuneSegmenter{}.Segment(word), 5)
		assert.Empty(t, GraphemeSegmenter{}.Segment(""))
	})

	t.Run("Normalising", func(t *testing.T) {
		s := NormalisingSegmenter{Inner: RuneSegmenter{}, StripMarks: true}
		assert.Equal(t, []string{"j", "u", "r"}, s.Segment("J\u00fcr"))

		s = NormalisingSegmenter{Inner: RuneSegmenter{}, CaseSensitive: true}
		assert.Equal(t, []string{"J", "\u00fc"}, s.Segment("J\u00fc"))
	})

	t.Run("Func", func(t *testing.T) {
		var s Segmenter = SegmenterFunc(func(word string) []string { return []string{word} })
		assert.Equal(t, []string{"whole"}, s.Segment("whole"))
	})
}

func TestGraphemeKeys(t *testing.T) {
	flags := New()
	flags.Insert("🇩🇪🇫🇷", "🇩🇪")
	assert.ElementsMatch(t, []string{"🇩🇪🇫🇷"}, flags.Longest())
	assert.ElementsMatch(t, []string{"🇩🇪🇫🇷", "🇩🇪"}, flags.WordsWithPrefix("🇩🇪"))

	// With runes the first regional indicator alone is a valid prefix.
	runes := New(WithRunes())
	runes.Insert("🇩🇪")
	assert.Len(t, runes.WordsWithPrefix("\U0001F1E9"), 1)
	assert.Empty(t, flags.WordsWithPrefix("\U0001F1E9"))
}
