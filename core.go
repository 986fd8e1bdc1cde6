package trie

import (
	"strings"

	"github.com/rs/zerolog"
)

// core holds the algorithms shared by Trie and DataTrie. Its exported methods
// are promoted to both.
type core[V any] struct {
	root      *node[V]
	size      int
	segmenter Segmenter
	log       zerolog.Logger
}

func newCore[V any](opts []Option) core[V] {
	o := buildOptions(opts)
	return core[V]{
		root:      newNode[V](),
		segmenter: o.segmenter,
		log:       o.logger,
	}
}

// lazyInit makes the zero value usable.
func (c *core[V]) lazyInit() {
	if c.root == nil {
		c.root = newNode[V]()
		c.size = 0
	}
	if c.segmenter == nil {
		c.segmenter = GraphemeSegmenter{}
	}
}

// insert walks to the node spelling word, creating missing nodes, and marks
// it terminal. It returns nil for the empty word, which is never a member.
func (c *core[V]) insert(word string) *node[V] {
	c.lazyInit()
	keys := c.segmenter.Segment(word)
	if len(keys) == 0 {
		return nil
	}
	current := c.root
	for _, key := range keys {
		current = current.child(key)
	}
	if !current.terminal {
		current.terminal = true
		c.size++
	}
	return current
}

// wordNode returns the terminal node spelling word, or nil.
func (c *core[V]) wordNode(word string) *node[V] {
	c.lazyInit()
	keys := c.segmenter.Segment(word)
	if len(keys) == 0 {
		return nil
	}
	n := c.root.find(keys)
	if n == nil || !n.terminal {
		return nil
	}
	return n
}

func (c *core[V]) remove(word string) ([]V, error) {
	c.lazyInit()
	keys := c.segmenter.Segment(word)
	if len(keys) == 0 {
		return nil, ErrNotFound
	}
	values, found, _ := c.root.remove(keys)
	if !found {
		return nil, ErrNotFound
	}
	c.size--
	c.log.Debug().Str("word", word).Int("words", c.size).Msg("removed word")
	return values, nil
}

func (c *core[V]) removePrefix(prefix string) ([]V, int, error) {
	c.lazyInit()
	keys := c.segmenter.Segment(prefix)
	n := c.root.find(keys)
	if n == nil {
		return nil, 0, ErrNotFound
	}
	values, count := n.dropChildren(nil)
	c.size -= count
	// A prefix that is not itself a member is now a dead branch.
	if n != c.root && !n.terminal {
		c.prune(keys)
	}
	c.log.Debug().Str("prefix", prefix).Int("removed", count).Int("words", c.size).Msg("removed prefix")
	return values, count, nil
}

// prune deletes the dead tail of the path spelled by keys.
func (c *core[V]) prune(keys []string) {
	var descend func(n *node[V], keys []string) bool
	descend = func(n *node[V], keys []string) bool {
		if len(keys) == 0 {
			return !n.terminal && len(n.children) == 0
		}
		next, ok := n.children[keys[0]]
		if !ok {
			return false
		}
		if descend(next, keys[1:]) {
			delete(n.children, keys[0])
		}
		return !n.terminal && len(n.children) == 0
	}
	descend(c.root, keys)
}

func (c *core[V]) walk(prefix string, fn visitFunc[V]) {
	c.lazyInit()
	keys := c.segmenter.Segment(prefix)
	if n := c.root.find(keys); n != nil {
		n.walk(strings.Join(keys, ""), len(keys), fn)
	}
}

// extremes returns every word tied for the greatest (longest set) or the
// smallest depth in key units.
func (c *core[V]) extremes(longest bool) []string {
	words := []string{}
	best := -1
	c.walk("", func(word string, depth int, _ *node[V]) bool {
		switch {
		case best < 0 || (longest && depth > best) || (!longest && depth < best):
			best = depth
			words = append(words[:0], word)
		case depth == best:
			words = append(words, word)
		}
		return true
	})
	return words
}

// Contains reports whether word is a member of the trie.
func (c *core[V]) Contains(word string) bool {
	return c.wordNode(word) != nil
}

// WordsWithPrefix returns every member word starting with prefix, in no
// particular order. An unknown prefix yields an empty slice.
func (c *core[V]) WordsWithPrefix(prefix string) []string {
	words := []string{}
	c.walk(prefix, func(word string, _ int, _ *node[V]) bool {
		words = append(words, word)
		return true
	})
	return words
}

// All returns every member word, in no particular order.
func (c *core[V]) All() []string {
	return c.WordsWithPrefix("")
}

// Longest returns all the words of maximal length, measured in key units.
func (c *core[V]) Longest() []string {
	return c.extremes(true)
}

// Shortest returns all the words of minimal length, measured in key units.
func (c *core[V]) Shortest() []string {
	return c.extremes(false)
}

// Len returns the number of distinct member words.
func (c *core[V]) Len() int {
	return c.size
}

// IsEmpty reports whether the trie holds no words.
func (c *core[V]) IsEmpty() bool {
	return c.size == 0
}

// Clear removes every word.
func (c *core[V]) Clear() {
	c.root = newNode[V]()
	c.size = 0
}

func (c *core[V]) clone() core[V] {
	c.lazyInit()
	return core[V]{
		root:      c.root.clone(),
		size:      c.size,
		segmenter: c.segmenter,
		log:       c.log,
	}
}

// absorb merges a copy of o into c. Both tries must use the same
// segmentation.
func (c *core[V]) absorb(o *core[V]) {
	c.lazyInit()
	if o.root == nil {
		return
	}
	c.root.absorb(o.root.clone())
	c.size = c.root.count()
	c.log.Debug().Int("words", c.size).Msg("merged trie")
}

func (c *core[V]) equal(o *core[V], eq func(a, b V) bool) bool {
	c.lazyInit()
	o.lazyInit()
	return c.size == o.size && c.root.equal(o.root, eq)
}
