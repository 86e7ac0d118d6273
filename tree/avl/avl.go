package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/avltree/tree"
	"golang.org/x/exp/constraints"
)

// ErrNotFound is returned by Search when no node holds the key.
var ErrNotFound = errors.New("avl: key not found")

// Tree is an AVL tree mapping keys K to values V.
//
// Tree should not be copied after first use; pass *Tree around.
// The zero Tree has no CompareFunc and must not be used, create
// one with New or NewOrdered.
//
// Invariants, for every node N:
//   - every key in N.Left compares less than N.Key, and every key
//     in N.Right compares greater
//   - |height(N.Right) - height(N.Left)| <= 1
//   - N.Height == 1 + max(height(N.Left), height(N.Right))
type Tree[K, V any] struct {
	// don't return nodes directly - client could mutate keys or children!
	root  *tree.Node[K, V]
	cmp   tree.CompareFunc[K]
	count int
}

// New returns an empty tree ordered by cmp.
func New[K, V any](cmp tree.CompareFunc[K]) *Tree[K, V] {
	if cmp == nil {
		panic("avl: nil CompareFunc")
	}
	return &Tree[K, V]{
		cmp: cmp,
	}
}

// NewOrdered returns an empty tree ordered by the natural order of K.
// It is shorthand for New[K, V](tree.Ordered[K]).
func NewOrdered[K constraints.Ordered, V any]() *Tree[K, V] {
	return New[K, V](tree.Ordered[K])
}

// Size returns the number of keys in the tree.
func (t *Tree[K, V]) Size() int {
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the root, counted in edges.
// A tree with one key has height 0 and an empty tree has height -1.
func (t *Tree[K, V]) Height() int {
	return t.root.SafeHeight()
}

// String returns a one-line summary like "AVL tree of size 3 and height 1".
func (t *Tree[K, V]) String() string {
	return fmt.Sprintf("AVL tree of size %d and height %d", t.Size(), t.Height())
}

// Dump returns a multi-line drawing of the tree with the cached
// height of every node. See tree.Format for the layout.
func (t *Tree[K, V]) Dump() string {
	return tree.Format(t.root, true)
}
