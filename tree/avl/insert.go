package avl

import (
	"go.lepak.sg/avltree/tree"
)

// Insert stores v under k. If k is already in the tree its value is
// overwritten in place and the shape of the tree does not change.
func (t *Tree[K, V]) Insert(k K, v V) {
	var added bool
	t.root, added = t.insert(t.root, k, v)
	if added {
		t.count++
	}

	if debugChecks {
		t.mustCheck("insert")
	}
}

// insert returns the new root of the subtree rooted at n, and whether
// a node was allocated.
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
		// nothing below n changed
		return n, false
	default:
		panic("unreachable")
	}

	if !added {
		return n, false
	}

	return rebalance(n), true
}

// rebalance restores the AVL invariant at n, whose subtrees must
// already be balanced and whose cached height may be stale.
// It returns the node that now roots the subtree.
//
// The four cases, by the balance of n and of its taller child:
//
//	+2, right >= 0: rotate n left (right-right)
//	+2, right <  0: rotate n.Right right, then n left (right-left)
//	-2, left  <= 0: rotate n right (left-left)
//	-2, left  >  0: rotate n.Left left, then n right (left-right)
func rebalance[K, V any](n *tree.Node[K, V]) *tree.Node[K, V] {
	n.UpdateHeight()

	switch b := n.Balance(); {
	case b > 1:
		if n.Right.Balance() < 0 {
			n.Right = n.Right.RotateRight()
		}
		return n.RotateLeft()
	case b < -1:
		if n.Left.Balance() > 0 {
			n.Left = n.Left.RotateLeft()
		}
		return n.RotateRight()
	default:
		return n
	}
}
