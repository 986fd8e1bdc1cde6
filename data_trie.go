package trie

// DataTrie attaches an ordered collection of values to every word. Values of
// any type are accepted; inserting the same word repeatedly accumulates all
// of its values, duplicates included.
//
// A DataTrie is not safe for concurrent use.
type DataTrie[V any] struct {
	core[V]
}

// NewData creates a new empty trie carrying values of type V.
func NewData[V any](opts ...Option) *DataTrie[V] {
	return &DataTrie[V]{newCore[V](opts)}
}

// Insert adds word with value appended to its data.
func (d *DataTrie[V]) Insert(word string, value V) {
	if n := d.insert(word); n != nil {
		n.values = append(n.values, value)
	}
}

// InsertNoData adds words without attaching any value to them.
func (d *DataTrie[V]) InsertNoData(words ...string) {
	for _, word := range words {
		d.insert(word)
	}
}

// Remove removes word and returns the values that were attached to it.
// It returns ErrNotFound if word is not a member.
func (d *DataTrie[V]) Remove(word string) ([]V, error) {
	values, err := d.remove(word)
	if err != nil {
		return nil, err
	}
	return nonNil(values), nil
}

// RemovePrefix removes every word that starts with prefix, except prefix
// itself, and returns all the values they carried.
// It returns ErrNotFound if no word starts with prefix.
func (d *DataTrie[V]) RemovePrefix(prefix string) ([]V, error) {
	values, _, err := d.removePrefix(prefix)
	if err != nil {
		return nil, err
	}
	return nonNil(values), nil
}

// ClearData detaches and returns the values of word, which stays a member.
func (d *DataTrie[V]) ClearData(word string) ([]V, error) {
	n := d.wordNode(word)
	if n == nil {
		return nil, ErrNotFound
	}
	values := n.values
	n.values = nil
	return nonNil(values), nil
}

// GetData returns a copy of the values of word. With asPrefix set, the values
// of every word starting with word are returned instead, and an unknown prefix
// yields an empty slice.
//
// Without asPrefix, ErrNotFound is returned if word is not a member. A member
// inserted without data yields an empty slice and a nil error.
func (d *DataTrie[V]) GetData(word string, asPrefix bool) ([]V, error) {
	ptrs, err := d.GetDataPtr(word, asPrefix)
	if err != nil {
		return nil, err
	}
	values := make([]V, len(ptrs))
	for i, p := range ptrs {
		values[i] = *p
	}
	return values, nil
}

// GetDataPtr is like GetData but returns pointers to the stored values, which
// may be modified in place. The pointers are invalidated by the next insert
// into the same word.
func (d *DataTrie[V]) GetDataPtr(word string, asPrefix bool) ([]*V, error) {
	ptrs := []*V{}
	if asPrefix {
		d.walk(word, func(_ string, _ int, n *node[V]) bool {
			ptrs = appendPtrs(ptrs, n.values)
			return true
		})
		return ptrs, nil
	}
	n := d.wordNode(word)
	if n == nil {
		return nil, ErrNotFound
	}
	return appendPtrs(ptrs, n.values), nil
}

// Walk calls fn for every word starting with prefix, with the values attached
// to it, until fn returns false.
func (d *DataTrie[V]) Walk(prefix string, fn func(word string, values []V) bool) {
	d.walk(prefix, func(word string, _ int, n *node[V]) bool {
		return fn(word, n.values)
	})
}

// EqualFunc reports whether d and other hold the same words, with the values
// of each word equal as multisets under eq.
func (d *DataTrie[V]) EqualFunc(other *DataTrie[V], eq func(a, b V) bool) bool {
	return d.equal(&other.core, eq)
}

// Clone returns a deep copy of d. Values are copied by assignment.
func (d *DataTrie[V]) Clone() *DataTrie[V] {
	return &DataTrie[V]{d.clone()}
}

// Merge returns a new trie holding the words of both d and other. Values of
// words present in both are concatenated. Neither operand is modified.
func (d *DataTrie[V]) Merge(other *DataTrie[V]) *DataTrie[V] {
	merged := d.Clone()
	merged.MergeFrom(other)
	return merged
}

// MergeFrom adds the words and values of other to d. other is left unchanged.
func (d *DataTrie[V]) MergeFrom(other *DataTrie[V]) {
	d.absorb(&other.core)
}

// Equal reports whether a and b hold the same words carrying the same values,
// ignoring the order in which values were inserted.
func Equal[V comparable](a, b *DataTrie[V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

func appendPtrs[V any](ptrs []*V, values []V) []*V {
	for i := range values {
		ptrs = append(ptrs, &values[i])
	}
	return ptrs
}

func nonNil[V any](values []V) []V {
	if values == nil {
		return []V{}
	}
	return values
}
