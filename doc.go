/*
Package trie provides in-memory prefix trees over words.

Trie stores membership only. DataTrie attaches an ordered collection of
values of any type to each word, and can return the values of one word or of
every word sharing a prefix. Both support prefix enumeration, longest and
shortest words, structural equality, merging and JSON/YAML encoding.

Words are split into key units by a Segmenter fixed at construction: grapheme
clusters by default, runes with WithRunes, optionally normalised and case
folded.
*/
package trie
