package trie

// node is a vertex of the trie. children is keyed by key unit; if terminal is
// set, the path from the root to this node spells a member word and values
// holds the data attached to it.
type node[V any] struct {
	children map[string]*node[V]
	terminal bool
	values   []V
}

func newNode[V any]() *node[V] {
	return &node[V]{children: make(map[string]*node[V])}
}

// child returns the child for key, creating it when missing.
func (n *node[V]) child(key string) *node[V] {
	next, ok := n.children[key]
	if !ok {
		next = newNode[V]()
		n.children[key] = next
	}
	return next
}

// find follows keys from n and returns the node reached, or nil.
func (n *node[V]) find(keys []string) *node[V] {
	current := n
	for _, key := range keys {
		next, ok := current.children[key]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

// remove unmarks the word spelled by keys below n and deletes every node
// left without a purpose on the way back up. found reports whether the word
// was a member; prune tells the parent to drop n.
func (n *node[V]) remove(keys []string) (values []V, found, prune bool) {
	if len(keys) == 0 {
		if !n.terminal {
			return nil, false, false
		}
		values = n.values
		n.terminal, n.values = false, nil
		return values, true, len(n.children) == 0
	}
	next, ok := n.children[keys[0]]
	if !ok {
		return nil, false, false
	}
	values, found, prune = next.remove(keys[1:])
	if prune {
		delete(n.children, keys[0])
	}
	return values, found, found && !n.terminal && len(n.children) == 0
}

// dropChildren detaches every descendant of n, appending their values to
// collected, and returns how many member words were dropped.
func (n *node[V]) dropChildren(collected []V) ([]V, int) {
	count := 0
	for _, next := range n.children {
		var dropped int
		collected, dropped = next.dropChildren(collected)
		if next.terminal {
			count++
			collected = append(collected, next.values...)
		}
		count += dropped
	}
	n.children = make(map[string]*node[V])
	return collected, count
}

// visitFunc is called for every terminal node met by walk. word is the full
// word and depth its length in key units. Returning false stops the walk.
type visitFunc[V any] func(word string, depth int, n *node[V]) bool

func (n *node[V]) walk(word string, depth int, fn visitFunc[V]) bool {
	if n.terminal && !fn(word, depth, n) {
		return false
	}
	for key, next := range n.children {
		if !next.walk(word+key, depth+1, fn) {
			return false
		}
	}
	return true
}

// count returns the number of terminal nodes in the subtree rooted at n.
func (n *node[V]) count() int {
	total := 0
	if n.terminal {
		total++
	}
	for _, next := range n.children {
		total += next.count()
	}
	return total
}

func (n *node[V]) clone() *node[V] {
	c := &node[V]{
		children: make(map[string]*node[V], len(n.children)),
		terminal: n.terminal,
	}
	if n.values != nil {
		c.values = append([]V(nil), n.values...)
	}
	for key, next := range n.children {
		c.children[key] = next.clone()
	}
	return c
}

// absorb merges o into n. o must not be used afterwards: subtrees missing
// from n are moved, not copied.
func (n *node[V]) absorb(o *node[V]) {
	n.terminal = n.terminal || o.terminal
	n.values = append(n.values, o.values...)
	for key, theirs := range o.children {
		if ours, ok := n.children[key]; ok {
			ours.absorb(theirs)
			continue
		}
		n.children[key] = theirs
	}
}

// equal compares two subtrees structurally. When eq is nil values are
// ignored, otherwise the values of corresponding nodes must be equal as
// multisets.
func (n *node[V]) equal(o *node[V], eq func(a, b V) bool) bool {
	if n.terminal != o.terminal || len(n.children) != len(o.children) {
		return false
	}
	if eq != nil && !sameMultiset(n.values, o.values, eq) {
		return false
	}
	for key, ours := range n.children {
		theirs, ok := o.children[key]
		if !ok || !ours.equal(theirs, eq) {
			return false
		}
	}
	return true
}

func sameMultiset[V any](a, b []V, eq func(a, b V) bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for i, y := range b {
			if !used[i] && eq(x, y) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
