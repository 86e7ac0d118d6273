// Package avl implements an ordered map as an AVL tree: a binary
// search tree in which the heights of the two subtrees of every node
// differ by at most one. Search, Insert and Delete take O(log n).
//
// Keys are ordered only by the CompareFunc given to New; the tree
// never assumes a natural ordering. Inserting a key that is already
// present overwrites its value, and deleting an absent key does
// nothing.
//
// Every node caches its height (a leaf is 0, an empty subtree -1).
// Insert and Delete walk down to the mutation point recursively and
// rebalance each node on the way back up, so the invariant holds
// along the whole path and not just next to the changed leaf.
//
// A Tree is not safe for concurrent use. Readers (Search, Get,
// iterators) may run concurrently with each other but never with
// Insert or Delete; guard the tree with a sync.RWMutex if needed.
//
// Building with -tags avldebug runs Check after every mutation and
// panics on the first broken invariant.
package avl
