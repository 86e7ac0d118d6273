package avl

import (
	"context"

	"go.lepak.sg/avltree/chops"
	"go.lepak.sg/avltree/tree"
	"go.lepak.sg/avltree/tree/iterator"
)

// InOrder calls f for each key and value in ascending key order.
// If f returns false, the iteration is stopped early.
// f must not mutate the tree.
func (t *Tree[K, V]) InOrder(f func(k K, v V) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[K, V any](n *tree.Node[K, V], f func(k K, v V) bool) bool {
	if n == nil {
		return true
	}

	return visitInOrder(n.Left, f) &&
		f(n.Key, n.Value) &&
		visitInOrder(n.Right, f)
}

// Iterator returns a lazy iterator over the keys in ascending order.
// Value returns the value of the current key, and Reset restarts
// the iteration from the smallest key.
func (t *Tree[K, V]) Iterator() *iterator.InOrder[K, V] {
	return iterator.NewInOrder(t.root, t.Height())
}

// ReverseIterator is like Iterator, in descending key order.
func (t *Tree[K, V]) ReverseIterator() *iterator.Reverse[K, V] {
	return iterator.NewReverse(t.root, t.Height())
}

// Coroutine sends the keys in ascending order on a channel, from a
// goroutine that runs until the keys run out, Stop is called or ctx
// is done. The tree must not be mutated until then.
func (t *Tree[K, V]) Coroutine(ctx context.Context) chops.CoIterator[K] {
	return chops.CoIterate[K](ctx, t.Iterator())
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.count)
	for i := t.Iterator(); i.Next(); {
		keys = append(keys, i.Item())
	}
	return keys
}
