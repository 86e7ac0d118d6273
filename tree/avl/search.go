package avl

import (
	"fmt"

	"go.lepak.sg/avltree/tree"
)

// Search returns the value stored with k.
// If k is not in the tree, the error wraps ErrNotFound.
func (t *Tree[K, V]) Search(k K) (V, error) {
	if n := t.find(k); n != nil {
		return n.Value, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrNotFound, k)
}

// Get returns the value stored with k and whether k was found.
func (t *Tree[K, V]) Get(k K) (v V, ok bool) {
	n := t.find(k)
	if n == nil {
		return
	}
	return n.Value, true
}

// Contains reports whether k is in the tree.
func (t *Tree[K, V]) Contains(k K) bool {
	return t.find(k) != nil
}

func (t *Tree[K, V]) find(k K) *tree.Node[K, V] {
	n := t.root

	for n != nil {
		switch tree.OrderOf(t.cmp(k, n.Key)) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Min returns the smallest key and its value.
// ok is false if the tree is empty.
func (t *Tree[K, V]) Min() (k K, v V, ok bool) {
	n := t.root.Leftmost()
	if n == nil {
		return
	}
	return n.Key, n.Value, true
}

// Max returns the largest key and its value.
// ok is false if the tree is empty.
func (t *Tree[K, V]) Max() (k K, v V, ok bool) {
	n := t.root.Rightmost()
	if n == nil {
		return
	}
	return n.Key, n.Value, true
}
