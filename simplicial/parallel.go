package simplicial

import (
	"fmt"
	"sync"

	"github.com/notargets/gosimplex/geometry"
	"github.com/notargets/gosimplex/utils"
)

/*
EvaluateParallel interpolates dots split into contiguous buckets, one goroutine per bucket. A parallelDegree of
zero uses one goroutine per CPU. The result matches EvaluateAll, including which failure is reported: the one at
the lowest query index.
*/
func (ip *Interpolator) EvaluateParallel(dots []geometry.Point, parallelDegree int) (vals []float64, err error) {
	if len(dots) == 0 {
		return []float64{}, nil
	}
	var (
		NP   = utils.ParallelDegree(parallelDegree, len(dots))
		pm   = utils.NewPartitionMap(NP, len(dots))
		errs = make([]error, NP)
		wg   = sync.WaitGroup{}
	)
	vals = make([]float64, len(dots))
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for k := kMin; k < kMax; k++ {
				var e error
				if vals[k], e = ip.Interpolate(dots[k]); e != nil {
					errs[np] = fmt.Errorf("query %d: %w", k, e)
					return
				}
			}
		}(np)
	}
	wg.Wait()
	// Buckets are in index order
	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return
}
