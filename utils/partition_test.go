package utils

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{
		pm := NewPartitionMap(3, 10)
		assert.Equal(t, [][2]int{{0, 4}, {4, 7}, {7, 10}}, pm.Partitions)
		kMin, kMax := pm.GetBucketRange(1)
		assert.Equal(t, []int{4, 7}, []int{kMin, kMax})
		assert.Equal(t, [2]int{7, 10}, pm.Split1D(2))
	}
	{ // More buckets than items leaves the tail empty
		pm := NewPartitionMap(4, 2)
		assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 2}, {2, 2}}, pm.Partitions)
	}
	{ // Buckets are contiguous, cover the range and differ in size by at most one
		for _, np := range []int{1, 2, 5, 32} {
			for maxIndex := np; maxIndex < 300; maxIndex++ {
				var (
					pm           = NewPartitionMap(np, maxIndex)
					next         int
					small, large = maxIndex, 0
				)
				for b := 0; b < np; b++ {
					kMin, kMax := pm.GetBucketRange(b)
					assert.Equal(t, next, kMin)
					next = kMax
					small, large = min(small, kMax-kMin), max(large, kMax-kMin)
				}
				assert.Equal(t, maxIndex, next)
				assert.LessOrEqual(t, large-small, 1, "np %d, maxIndex %d", np, maxIndex)
			}
		}
	}
}

func TestParallelDegree(t *testing.T) {
	assert.Equal(t, 3, ParallelDegree(3, 100))
	assert.Equal(t, 2, ParallelDegree(8, 2))
	assert.Equal(t, 1, ParallelDegree(4, 0))
	assert.Equal(t, 1, ParallelDegree(-2, 1))
	assert.Equal(t, min(runtime.NumCPU(), 50), ParallelDegree(0, 50))
}
