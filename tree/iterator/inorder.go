package iterator

import (
	"go.lepak.sg/avltree/tree"
)

// InOrder is an iterator object over a binary tree that yields
// keys in ascending order. The usage should be pretty familiar:
//
//	i := someTree.Iterator()
//	for i.Next() {
//		k, v := i.Item(), i.Value()
//		... do stuff with k and v ...
//	}
//
// The iterator is lazy: nothing is visited before the first Next.
// Once Next has returned false it keeps returning false until Reset.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[K, V any] struct {
	root    *tree.Node[K, V]
	stack   []*tree.Node[K, V]
	started bool
}

// NewInOrder returns an iterator over the tree rooted at root.
// heightHint sizes the stack up front; 0 is fine when the height
// is not known.
func NewInOrder[K, V any](root *tree.Node[K, V], heightHint int) *InOrder[K, V] {
	return &InOrder[K, V]{
		root:  root,
		stack: make([]*tree.Node[K, V], 0, max(heightHint, 0)+1),
	}
}

// Next advances to the next key and reports whether there is one.
func (i *InOrder[K, V]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushLeft(i.root)
		return len(i.stack) > 0
	}

	if len(i.stack) == 0 {
		return false
	}

	pop := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(pop.Right)

	return len(i.stack) > 0
}

// pushLeft stacks n and its chain of left children. The top of the
// stack is then the smallest key not yet visited, and every node below
// it still has its own right subtree to visit once it is popped.
func (i *InOrder[K, V]) pushLeft(n *tree.Node[K, V]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.Left
	}
}

// Item returns the current key of the iterator.
func (i *InOrder[K, V]) Item() K {
	return i.stack[len(i.stack)-1].Key
}

// Value returns the value stored with the current key.
func (i *InOrder[K, V]) Value() V {
	return i.stack[len(i.stack)-1].Value
}

// Reset rewinds the iterator to before the smallest key.
func (i *InOrder[K, V]) Reset() {
	i.stack = i.stack[:0]
	i.started = false
}
