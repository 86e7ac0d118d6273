package binary

import (
	"math/rand"

	"go.lepak.sg/avltree/tree"
)

// RandomOrder returns the keys [0, num) in a random order.
// The seed is a parameter, which ensures repeatable results.
// num must not be negative.
func RandomOrder(num int, seed int64) []int {
	rd := rand.New(rand.NewSource(seed))

	keys := make([]int, num)
	for i := range keys {
		keys[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})

	return keys
}

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in the order
// given by RandomOrder(num, seed). Each value is the key's position
// in that order.
func BuildRandom(num int, seed int64) *Tree[int, int] {
	tr := New[int, int](tree.Ordered[int])

	for i, k := range RandomOrder(num, seed) {
		tr.Insert(k, i)
	}

	return tr
}

// BuildSorted builds the worst case: keys [0, num) inserted in
// ascending order, leaving a tree of height num-1.
func BuildSorted(num int) *Tree[int, int] {
	tr := New[int, int](tree.Ordered[int])

	for k := 0; k < num; k++ {
		tr.Insert(k, k)
	}

	return tr
}
