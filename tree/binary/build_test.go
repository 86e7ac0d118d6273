package binary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"
)

func TestRandomOrder(t *testing.T) {
	a := RandomOrder(100, 42)
	b := RandomOrder(100, 42)
	assert.Equal(t, a, b, "same seed, same order")

	sorted := slices.Clone(a)
	slices.Sort(sorted)
	for i, k := range sorted {
		assert.Equal(t, i, k)
	}

	assert.Empty(t, RandomOrder(0, 1))
}

func TestBuildRandom(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 20
	const size = 200

	for i := 0; i < rounds; i++ {
		seed := seedrd.Int63()
		t.Run(fmt.Sprintf("round=%d", i), func(t *testing.T) {
			tr := BuildRandom(size, seed)
			assert.Equal(t, size, tr.Size())

			var keys []int
			tr.InOrder(func(k, _ int) bool {
				keys = append(keys, k)
				return true
			})
			assert.True(t, slices.IsSorted(keys))
			assert.Len(t, keys, size)
			assert.GreaterOrEqual(t, tr.Height(), 7, "cannot be shorter than a complete tree")
		})
	}
}

func TestBuildSorted(t *testing.T) {
	tr := BuildSorted(500)
	assert.Equal(t, 499, tr.Height())
	assert.Equal(t, 500, tr.Size())
}

var trForBench *Tree[int, int]

func BenchmarkBuildRandom(b *testing.B) {
	for _, size := range []int{10, 100, 10000} {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				trForBench = BuildRandom(size, int64(i))
			}
		})
	}
}
