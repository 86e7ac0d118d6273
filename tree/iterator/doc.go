// Package iterator walks trees built from tree.Node in key order.
//
// Nodes do not point back at their parents, so every iterator here
// keeps its own stack of the ancestors still to be visited. The stack
// never grows past the height of the tree plus one.
package iterator

import (
	"go.lepak.sg/avltree/chops"
)

// Iterator is implemented by InOrder and Reverse.
//
// Next must be called before the first Item or Value, and they must
// not be called after Next returns false. Reset rewinds to the start,
// so the same tree can be walked again without allocating.
//
//	i := someTree.Iterator()
//	for i.Next() {
//		k, v := i.Item(), i.Value()
//		...
//	}
type Iterator[K, V any] interface {
	chops.Iterator[K]
	Value() V
	Reset()
}

var (
	_ Iterator[int, string] = (*InOrder[int, string])(nil)
	_ Iterator[int, string] = (*Reverse[int, string])(nil)
)
