package trie

import "errors"

// ErrNotFound is returned when a word (or prefix) is not a member of the trie.
var ErrNotFound = errors.New("trie: word not found")
