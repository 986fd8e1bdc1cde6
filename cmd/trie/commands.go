package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	trie "github.com/sarthakjha889/go-basic-trie"
	"github.com/sarthakjha889/go-basic-trie/internal/config"
)

// Context is handed to every command's Run method.
type Context struct {
	Config *config.Config
	Log    zerolog.Logger
	Out    io.Writer
}

// CLI is the command line grammar.
var CLI struct {
	Config string `help:"Path to a config file." type:"path" short:"c"`

	Words    WordsCmd    `cmd:"" help:"List the words starting with a prefix."`
	Longest  LongestCmd  `cmd:"" help:"List the longest words."`
	Shortest ShortestCmd `cmd:"" help:"List the shortest words."`
	Count    CountCmd    `cmd:"" help:"Count the distinct words."`
	Data     DataCmd     `cmd:"" help:"Print the values attached to a word."`
	Dump     DumpCmd     `cmd:"" help:"Encode the trie built from a word list."`
}

// WordsCmd lists words under a prefix.
type WordsCmd struct {
	File   string `arg:"" help:"Word list, one word per line." type:"existingfile"`
	Prefix string `help:"Only list words starting with this prefix." short:"p"`
}

func (c *WordsCmd) Run(ctx *Context) error {
	t, err := ctx.loadTrie(c.File)
	if err != nil {
		return err
	}
	return ctx.printWords(t.WordsWithPrefix(c.Prefix))
}

// LongestCmd lists the longest words.
type LongestCmd struct {
	File string `arg:"" help:"Word list, one word per line." type:"existingfile"`
}

func (c *LongestCmd) Run(ctx *Context) error {
	t, err := ctx.loadTrie(c.File)
	if err != nil {
		return err
	}
	return ctx.printWords(t.Longest())
}

// ShortestCmd lists the shortest words.
type ShortestCmd struct {
	File string `arg:"" help:"Word list, one word per line." type:"existingfile"`
}

func (c *ShortestCmd) Run(ctx *Context) error {
	t, err := ctx.loadTrie(c.File)
	if err != nil {
		return err
	}
	return ctx.printWords(t.Shortest())
}

// CountCmd prints the number of distinct words.
type CountCmd struct {
	File string `arg:"" help:"Word list, one word per line." type:"existingfile"`
}

func (c *CountCmd) Run(ctx *Context) error {
	t, err := ctx.loadTrie(c.File)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Out, t.Len())
	return err
}

// DataCmd prints the values attached to a word, or to every word sharing
// a prefix.
type DataCmd struct {
	File   string `arg:"" help:"Word list, one 'word<TAB>value' entry per line." type:"existingfile"`
	Word   string `arg:"" help:"Word to look up."`
	Prefix bool   `help:"Treat the word as a prefix."`
}

func (c *DataCmd) Run(ctx *Context) error {
	t, err := ctx.loadDataTrie(c.File)
	if err != nil {
		return err
	}
	values, err := t.GetData(c.Word, c.Prefix)
	if err != nil {
		return fmt.Errorf("%q: %w", c.Word, err)
	}
	return ctx.printWords(values)
}

// DumpCmd encodes the trie built from a word list.
type DumpCmd struct {
	File string `arg:"" help:"Word list, one 'word[<TAB>value]' entry per line." type:"existingfile"`
}

func (c *DumpCmd) Run(ctx *Context) error {
	t, err := ctx.loadDataTrie(c.File)
	if err != nil {
		return err
	}
	switch ctx.Config.Output.Format {
	case "yaml":
		enc := yaml.NewEncoder(ctx.Out)
		defer enc.Close()
		return enc.Encode(t)
	default:
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}
}

func (ctx *Context) loadTrie(path string) (*trie.Trie, error) {
	t := trie.New(ctx.trieOptions()...)
	err := readEntries(path, func(e entry) {
		t.Insert(e.word)
	})
	if err != nil {
		return nil, err
	}
	ctx.Log.Debug().Str("file", path).Int("words", t.Len()).Msg("loaded word list")
	return t, nil
}

func (ctx *Context) loadDataTrie(path string) (*trie.DataTrie[string], error) {
	t := trie.NewData[string](ctx.trieOptions()...)
	err := readEntries(path, func(e entry) {
		if e.hasValue {
			t.Insert(e.word, e.value)
			return
		}
		t.InsertNoData(e.word)
	})
	if err != nil {
		return nil, err
	}
	ctx.Log.Debug().Str("file", path).Int("words", t.Len()).Msg("loaded word list")
	return t, nil
}

func (ctx *Context) trieOptions() []trie.Option {
	return append(ctx.Config.Segmentation.Options(), trie.WithLogger(ctx.Log))
}

// printWords writes the sorted words in the configured output format.
func (ctx *Context) printWords(words []string) error {
	sort.Strings(words)
	switch ctx.Config.Output.Format {
	case "json":
		return json.NewEncoder(ctx.Out).Encode(words)
	case "yaml":
		enc := yaml.NewEncoder(ctx.Out)
		defer enc.Close()
		return enc.Encode(words)
	}
	for _, w := range words {
		if _, err := fmt.Fprintln(ctx.Out, w); err != nil {
			return err
		}
	}
	return nil
}
