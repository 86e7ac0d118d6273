package binary

import (
	"go.lepak.sg/avltree/tree"
)

// Tree is a binary search tree that is not self-balancing.
// Inserting keys in sorted order degrades it into a linked list,
// which is what makes it a useful baseline for avl.Tree.
//
// It is safe for concurrent reads (searching, iterating, etc) but
// not for concurrent reads and writes (inserting).
// This tree implementation does not support removal.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     compare less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     compare greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
type Tree[K, V any] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root  *tree.Node[K, V]
	cmp   tree.CompareFunc[K]
	count int
}

// New returns an empty tree ordered by cmp.
func New[K, V any](cmp tree.CompareFunc[K]) *Tree[K, V] {
	if cmp == nil {
		panic("binary: nil CompareFunc")
	}
	return &Tree[K, V]{cmp: cmp}
}

// Search returns the value stored with k and whether it was found.
func (t *Tree[K, V]) Search(k K) (v V, ok bool) {
	n := t.root

	for n != nil {
		switch tree.OrderOf(t.cmp(k, n.Key)) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n.Value, true
		default:
			panic("unreachable")
		}
	}

	return
}

// Insert stores v under k and returns true if a new node was added.
// If k is already in the tree its value is overwritten and Insert
// returns false.
//
// Heights are maintained on the way back up, like in avl.Tree, but
// nothing is ever rotated.
func (t *Tree[K, V]) Insert(k K, v V) bool {
	var added bool
	t.root, added = t.insert(t.root, k, v)
	if added {
		t.count++
	}
	return added
}

func (t *Tree[K, V]) insert(n *tree.Node[K, V], k K, v V) (*tree.Node[K, V], bool) {
	if n == nil {
		return tree.NodeOf(k, v), true
	}

	var added bool
	switch tree.OrderOf(t.cmp(k, n.Key)) {
	case tree.Less:
		n.Left, added = t.insert(n.Left, k, v)
	case tree.Greater:
		n.Right, added = t.insert(n.Right, k, v)
	case tree.Equal:
		n.Value = v
		return n, false
	default:
		panic("unreachable")
	}

	if added {
		n.UpdateHeight()
	}
	return n, added
}

// Size returns the number of keys in the tree.
func (t *Tree[K, V]) Size() int {
	return t.count
}

// Height returns the height of the tree in edges, -1 if it is empty.
func (t *Tree[K, V]) Height() int {
	return t.root.SafeHeight()
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[K, V]) InOrder(f func(k K, v V) bool) {
	t.visitInOrder(t.root, f)
}

func (t *Tree[K, V]) visitInOrder(n *tree.Node[K, V], f func(k K, v V) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which keeps its own stack.
	if n == nil {
		return true
	}

	if !t.visitInOrder(n.Left, f) {
		return false
	}

	if !f(n.Key, n.Value) {
		return false
	}

	return t.visitInOrder(n.Right, f)
}

// String returns a drawing of the tree, see tree.Format.
func (t *Tree[K, V]) String() string {
	return tree.Format(t.root, false)
}
