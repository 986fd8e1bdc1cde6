package trie

// Trie stores membership of words. The zero value is an empty trie keyed by
// grapheme cluster.
//
// A Trie is not safe for concurrent use; callers sharing one across
// goroutines must synchronise access themselves.
type Trie struct {
	core[struct{}]
}

// New creates a new empty trie. By default words are split into grapheme
// clusters, and neither normalisation nor case folding is applied.
func New(opts ...Option) *Trie {
	return &Trie{newCore[struct{}](opts)}
}

// Insert inserts words into the Trie. Inserting a member again, or the
// empty word, has no effect.
func (t *Trie) Insert(words ...string) {
	for _, word := range words {
		t.insert(word)
	}
}

// Remove removes word, pruning the nodes no other word needs.
// It returns ErrNotFound if word is not a member.
func (t *Trie) Remove(word string) error {
	_, err := t.remove(word)
	return err
}

// RemovePrefix removes every word that starts with prefix, except prefix
// itself, and returns how many were removed. It returns ErrNotFound if no
// word starts with prefix.
func (t *Trie) RemovePrefix(prefix string) (int, error) {
	_, count, err := t.removePrefix(prefix)
	return count, err
}

// Walk calls fn for every word starting with prefix until fn returns false.
func (t *Trie) Walk(prefix string, fn func(word string) bool) {
	t.walk(prefix, func(word string, _ int, _ *node[struct{}]) bool {
		return fn(word)
	})
}

// Equal reports whether t and other hold the same words.
func (t *Trie) Equal(other *Trie) bool {
	return t.equal(&other.core, nil)
}

// Clone returns a deep copy of t.
func (t *Trie) Clone() *Trie {
	return &Trie{t.clone()}
}

// Merge returns a new trie holding the words of both t and other.
// Neither operand is modified.
func (t *Trie) Merge(other *Trie) *Trie {
	merged := t.Clone()
	merged.MergeFrom(other)
	return merged
}

// MergeFrom adds the words of other to t. other is left unchanged.
func (t *Trie) MergeFrom(other *Trie) {
	t.absorb(&other.core)
}
