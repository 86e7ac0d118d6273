package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/avltree/tree"
)

// ErrCorrupt is wrapped by the errors returned from Check.
var ErrCorrupt = errors.New("avl: corrupt tree")

// Check walks the whole tree and verifies the ordering of keys, the
// cached heights, the balance of every node and the cached size.
// It returns nil for a well-formed tree, otherwise an error wrapping
// ErrCorrupt that describes the first violation found.
//
// A violation is always a bug in this package; Check exists for
// tests and for the avldebug build.
func (t *Tree[K, V]) Check() error {
	count, _, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: cached size %d, counted %d nodes", ErrCorrupt, t.count, count)
	}
	return nil
}

// check verifies the subtree rooted at n, whose keys must all lie
// strictly between lo and hi (nil means unbounded). It returns the
// number of nodes and the actual height of the subtree.
func (t *Tree[K, V]) check(n *tree.Node[K, V], lo, hi *K) (count, height int, err error) {
	if n == nil {
		return 0, -1, nil
	}

	if lo != nil && tree.OrderOf(t.cmp(n.Key, *lo)) != tree.Greater {
		return 0, 0, fmt.Errorf("%w: key %v is not greater than %v", ErrCorrupt, n.Key, *lo)
	}
	if hi != nil && tree.OrderOf(t.cmp(n.Key, *hi)) != tree.Less {
		return 0, 0, fmt.Errorf("%w: key %v is not less than %v", ErrCorrupt, n.Key, *hi)
	}

	lc, lh, err := t.check(n.Left, lo, &n.Key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.check(n.Right, &n.Key, hi)
	if err != nil {
		return 0, 0, err
	}

	height = 1 + max(lh, rh)
	if n.Height != height {
		return 0, 0, fmt.Errorf("%w: key %v caches height %d, actual %d",
			ErrCorrupt, n.Key, n.Height, height)
	}
	if b := rh - lh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: key %v has balance %+d", ErrCorrupt, n.Key, b)
	}

	return 1 + lc + rc, height, nil
}

func (t *Tree[K, V]) mustCheck(op string) {
	if err := t.Check(); err != nil {
		panic(fmt.Sprintf("after %s: %v", op, err))
	}
}
