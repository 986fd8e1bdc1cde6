package trie

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireNode is the encoded form of a node: "c" holds the children, "we" marks
// a word end and "d" the attached values.
type wireNode[V any] struct {
	Children map[string]*wireNode[V] `json:"c,omitempty" yaml:"c,omitempty"`
	Terminal bool                    `json:"we,omitempty" yaml:"we,omitempty"`
	Values   []V                     `json:"d,omitempty" yaml:"d,omitempty"`
}

func toWire[V any](n *node[V]) *wireNode[V] {
	w := &wireNode[V]{Terminal: n.terminal, Values: n.values}
	if len(n.children) > 0 {
		w.Children = make(map[string]*wireNode[V], len(n.children))
		for key, next := range n.children {
			w.Children[key] = toWire(next)
		}
	}
	return w
}

// fromWire rebuilds a node, dropping branches that lead to no word.
func fromWire[V any](w *wireNode[V]) *node[V] {
	n := newNode[V]()
	if w == nil {
		return n
	}
	n.terminal = w.Terminal
	if n.terminal {
		n.values = w.Values
	}
	for key, child := range w.Children {
		if key == "" {
			continue
		}
		next := fromWire(child)
		if next.terminal || len(next.children) > 0 {
			n.children[key] = next
		}
	}
	return n
}

func (c *core[V]) encode() *wireNode[V] {
	c.lazyInit()
	return toWire(c.root)
}

func (c *core[V]) decode(w *wireNode[V]) {
	c.lazyInit()
	c.root = fromWire(w)
	// The root never spells a word.
	c.root.terminal, c.root.values = false, nil
	c.size = c.root.count()
	c.log.Debug().Int("words", c.size).Msg("decoded trie")
}

// MarshalJSON implements json.Marshaler.
func (c *core[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.encode())
}

// UnmarshalJSON implements json.Unmarshaler. The segmentation options of the
// receiver are kept.
func (c *core[V]) UnmarshalJSON(data []byte) error {
	var w wireNode[V]
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("trie: decode json: %w", err)
	}
	c.decode(&w)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *core[V]) MarshalYAML() (interface{}, error) {
	return c.encode(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The segmentation options of the
// receiver are kept.
func (c *core[V]) UnmarshalYAML(value *yaml.Node) error {
	var w wireNode[V]
	if err := value.Decode(&w); err != nil {
		return fmt.Errorf("trie: decode yaml: %w", err)
	}
	c.decode(&w)
	return nil
}
