package avl

import (
	"go.lepak.sg/avltree/tree"
)

// Delete removes k and its value from the tree.
// Deleting a key that is not in the tree does nothing.
func (t *Tree[K, V]) Delete(k K) {
	var removed bool
	t.root, removed = t.delete(t.root, k)
	if removed {
		t.count--
	}

	if debugChecks {
		t.mustCheck("delete")
	}
}

// delete returns the new root of the subtree rooted at n, and whether
// a node was unlinked.
func (t *Tree[K, V]) delete(n *tree.Node[K, V], k K) (*tree.Node[K, V], bool) {
	if n == nil {
		// key not in tree
		return nil, false
	}

	var removed bool
	switch tree.OrderOf(t.cmp(k, n.Key)) {
	case tree.Less:
		n.Left, removed = t.delete(n.Left, k)
	case tree.Greater:
		n.Right, removed = t.delete(n.Right, k)
	case tree.Equal:
		if n.Left == nil {
			return n.Right, true
		}
		if n.Right == nil {
			return n.Left, true
		}

		// Two children: take over the in-order successor's entry,
		// then remove the successor, which has no left child.
		succ := n.Right.Leftmost()
		n.Key, n.Value = succ.Key, succ.Value
		n.Right, removed = t.delete(n.Right, succ.Key)
	default:
		panic("unreachable")
	}

	if !removed {
		// nothing below n changed
		return n, false
	}

	return rebalance(n), true
}
