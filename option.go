package trie

import "github.com/rs/zerolog"

// Option configures a trie at construction time. Segmentation cannot be
// changed afterwards: mixing key spaces inside one tree would corrupt it.
type Option func(*options)

type options struct {
	segmenter       Segmenter
	stripMarks      bool
	caseInsensitive bool
	logger          zerolog.Logger
}

// WithSegmenter sets a custom key segmenter.
func WithSegmenter(s Segmenter) Option {
	return func(o *options) { o.segmenter = s }
}

// WithGraphemes keys the trie by grapheme cluster. This is the default.
func WithGraphemes() Option {
	return WithSegmenter(GraphemeSegmenter{})
}

// WithRunes keys the trie by rune.
func WithRunes() Option {
	return WithSegmenter(RuneSegmenter{})
}

// WithNormalisation strips combining marks before segmenting.
// For example, Jurg will find Jürgen, Jürg will find Jurgen.
func WithNormalisation() Option {
	return func(o *options) { o.stripMarks = true }
}

// CaseInsensitive folds case before segmenting.
func CaseInsensitive() Option {
	return func(o *options) { o.caseInsensitive = true }
}

// WithLogger sets the logger used for structural events. The default logger
// discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.segmenter == nil {
		o.segmenter = GraphemeSegmenter{}
	}
	if o.stripMarks || o.caseInsensitive {
		o.segmenter = NormalisingSegmenter{
			Inner:         o.segmenter,
			StripMarks:    o.stripMarks,
			CaseSensitive: !o.caseInsensitive,
		}
	}
	return o
}
