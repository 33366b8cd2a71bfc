// Package dsa provides data structure implementations for the corpus index.
// Uses go-radix for a compressed prefix tree (radix tree).
package dsa

import (
	"github.com/armon/go-radix"
)

// Trie wraps go-radix for a compressed prefix tree (radix tree).
// Keyword keys share long common prefixes (transliterated Sanskrit stems),
// which the radix tree stores in single compressed nodes.
//
// Time Complexity: O(k) where k is key length.
type Trie[V any] struct {
	tree *radix.Tree
	size int
}

// NewTrie creates a new empty radix tree.
func NewTrie[V any]() *Trie[V] {
	return &Trie[V]{
		tree: radix.New(),
	}
}

// Insert adds a key-value pair to the tree.
func (t *Trie[V]) Insert(key string, value V) {
	_, updated := t.tree.Insert(key, value)
	if !updated {
		t.size++
	}
}

// Search looks up a key in the tree.
func (t *Trie[V]) Search(key string) (V, bool) {
	val, found := t.tree.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	v, ok := val.(V)
	if !ok {
		var zero V
		return zero, false
	}
	return v, true
}

// WalkPrefix visits every key-value pair under the given prefix.
// Returning true from fn stops the walk.
func (t *Trie[V]) WalkPrefix(prefix string, fn func(key string, value V) bool) {
	t.tree.WalkPrefix(prefix, func(key string, val interface{}) bool {
		v, ok := val.(V)
		if !ok {
			return false
		}
		return fn(key, v)
	})
}

// Len returns the number of keys in the tree.
func (t *Trie[V]) Len() int {
	return t.size
}
