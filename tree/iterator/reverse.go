package iterator

import (
	"go.lepak.sg/avltree/tree"
)

// Reverse is an iterator object over a binary tree.
// Iteration starts from the *largest* key and runs to
// the *smallest* key.
// The usage should be pretty familiar:
//
//	i := someTree.ReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type Reverse[K, V any] struct {
	root    *tree.Node[K, V]
	stack   []*tree.Node[K, V]
	started bool
}

// NewReverse returns a new Reverse iterator over the tree
// rooted at root. heightHint has the same meaning as in NewInOrder.
// Note: This is meant to be called by other tree implementations.
func NewReverse[K, V any](root *tree.Node[K, V], heightHint int) *Reverse[K, V] {
	return &Reverse[K, V]{
		root:  root,
		stack: make([]*tree.Node[K, V], 0, max(heightHint, 0)+1),
	}
}

// Next advances to the next smaller key and reports whether there is one.
func (i *Reverse[K, V]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushRight(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushRight(pop.Left)

	return len(i.stack) > 0
}

func (i *Reverse[K, V]) pushRight(n *tree.Node[K, V]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Right
	}
}

// Item returns the current key of the iterator.
func (i *Reverse[K, _]) Item() K {
	return i.stack[len(i.stack)-1].Key
}

// Value returns the value stored with the current key.
func (i *Reverse[_, V]) Value() V {
	return i.stack[len(i.stack)-1].Value
}

// Reset rewinds the iterator to before the largest key.
func (i *Reverse[K, V]) Reset() {
	i.stack = i.stack[:0]
	i.started = false
}
