package dsa

import "testing"

func TestInsertAndSearch(t *testing.T) {
	trie := NewTrie[int]()
	trie.Insert("dharma", 1)
	trie.Insert("dharana", 2)

	got, ok := trie.Search("dharma")
	if !ok || got != 1 {
		t.Errorf("Search(dharma) = %d, %v; want 1, true", got, ok)
	}
	if _, ok := trie.Search("dhar"); ok {
		t.Error("prefix must not match a full key")
	}
	if trie.Len() != 2 {
		t.Errorf("expected 2 keys, got %d", trie.Len())
	}
}

func TestInsertOverwrite(t *testing.T) {
	trie := NewTrie[string]()
	trie.Insert("k", "old")
	trie.Insert("k", "new")

	got, _ := trie.Search("k")
	if got != "new" {
		t.Errorf("expected overwrite, got %q", got)
	}
	if trie.Len() != 1 {
		t.Errorf("overwrite must not grow the tree, got %d", trie.Len())
	}
}

func TestWalkPrefix(t *testing.T) {
	trie := NewTrie[int]()
	for i, key := range []string{"moksha", "mokshada", "maya"} {
		trie.Insert(key, i)
	}

	var visited []string
	trie.WalkPrefix("moksha", func(key string, _ int) bool {
		visited = append(visited, key)
		return false
	})
	if len(visited) != 2 {
		t.Errorf("expected 2 keys under prefix, got %v", visited)
	}
}
