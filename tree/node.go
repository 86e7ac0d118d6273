package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a single entry of a binary search tree.
// A node owns its children: no node is reachable from two parents,
// and there are no parent pointers.
//
// Height is cached. It counts the edges on the longest path down to
// a leaf, so a leaf has height 0 and an empty (nil) subtree has
// height -1. Whoever replaces Left or Right must call UpdateHeight.
type Node[K, V any] struct {
	Key         K
	Value       V
	Height      int
	Left, Right *Node[K, V]
}

// NodeOf returns a new leaf.
func NodeOf[K, V any](k K, v V) *Node[K, V] {
	return &Node[K, V]{
		Key:   k,
		Value: v,
	}
}

// SafeHeight returns the cached height of n, or -1 if n is nil.
func (n *Node[K, V]) SafeHeight() int {
	if n == nil {
		return -1
	}
	return n.Height
}

// UpdateHeight recomputes n.Height from the cached heights of its children.
func (n *Node[K, V]) UpdateHeight() {
	n.Height = 1 + max(n.Left.SafeHeight(), n.Right.SafeHeight())
}

// Balance returns the balance factor of n:
// the height of the right subtree minus the height of the left one.
// The balance of an empty subtree is 0.
func (n *Node[K, V]) Balance() int {
	if n == nil {
		return 0
	}
	return n.Right.SafeHeight() - n.Left.SafeHeight()
}

// Leftmost returns the node with the smallest key in the subtree rooted at n.
func (n *Node[K, V]) Leftmost() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Rightmost returns the node with the largest key in the subtree rooted at n.
func (n *Node[K, V]) Rightmost() *Node[K, V] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Order is the result of a three-way comparison.
type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// CompareFunc is a three-way comparison: it returns a negative number
// if a < b, zero if a == b and a positive number if a > b.
// strings.Compare and bytes.Compare already have this shape.
//
// Trees never assume a default ordering of their keys, a CompareFunc
// is always supplied by the caller.
type CompareFunc[K any] func(a, b K) int

// OrderOf normalises the result of a CompareFunc.
func OrderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Compare orders l and r by the natural order of T.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// Ordered is Compare with the signature of a CompareFunc, so that it can
// be passed to a tree constructor directly:
//
//	tr := avl.New[int, string](tree.Ordered[int])
func Ordered[T constraints.Ordered](l, r T) int {
	return int(Compare(l, r))
}
