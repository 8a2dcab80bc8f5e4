package utils

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// MultiThread runs f over the integer range [start, end), spread across a
// pool of goroutines. It blocks until the range is exhausted, so it should be
// run sequentially, not in a separate thread. Designed for mass calculations
// whose per-item work is read-only or touches disjoint state.
//
// Each goroutine claims opsPerThread consecutive indexes at a time from a
// shared cursor before requesting another batch; threadsPerCPU goroutines are
// created for each CPU. Every index is visited exactly once, but in no
// particular order across goroutines.
func MultiThread(start, end int, f func(int), opsPerThread, threadsPerCPU int) {
	if end <= start {
		return
	}
	if opsPerThread < 1 {
		opsPerThread = 1
	}
	if threadsPerCPU < 1 {
		threadsPerCPU = 1
	}

	numThreads := runtime.NumCPU() * threadsPerCPU

	// the cursor holds the next unclaimed index, offset so it starts at 0
	var cursor int64
	span := int64(end - start)

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for thread := 0; thread < numThreads; thread++ {
		go func() {
			defer wg.Done()

			for {
				i := atomic.AddInt64(&cursor, int64(opsPerThread)) - int64(opsPerThread)
				if i >= span {
					return
				}

				e := i + int64(opsPerThread)
				if e > span {
					e = span
				}

				for ; i < e; i++ {
					f(start + int(i))
				}
			}
		}()
	}

	wg.Wait()
}
