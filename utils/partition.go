package utils

import "runtime"

// PartitionMap splits the index range [0, MaxIndex) into ParallelDegree contiguous buckets
type PartitionMap struct {
	MaxIndex       int
	ParallelDegree int
	Partitions     [][2]int // [start, end) of each bucket
}

func NewPartitionMap(parallelDegree, maxIndex int) (pm *PartitionMap) {
	pm = &PartitionMap{
		MaxIndex:       maxIndex,
		ParallelDegree: parallelDegree,
		Partitions:     make([][2]int, parallelDegree),
	}
	for n := range pm.Partitions {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// ParallelDegree resolves a requested degree: zero means one per CPU, and never more than one per item
func ParallelDegree(procLimit, maxIndex int) (np int) {
	np = procLimit
	if np <= 0 {
		np = runtime.NumCPU()
	}
	return max(1, min(np, maxIndex))
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	return pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
}

// Split1D returns the bucket of one worker, the first MaxIndex % ParallelDegree buckets hold one extra item
func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		size  = pm.MaxIndex / pm.ParallelDegree
		extra = pm.MaxIndex % pm.ParallelDegree
	)
	bucket[0] = threadNum*size + min(threadNum, extra)
	bucket[1] = bucket[0] + size
	if threadNum < extra {
		bucket[1]++
	}
	return
}
