package utils

import (
	"sync/atomic"
	"testing"
)

func TestMultiThreadCoversRangeOnce(t *testing.T) {
	const start, end = 3, 1003

	counts := make([]int64, end-start)
	MultiThread(start, end, func(i int) {
		if i < start || i >= end {
			t.Errorf("index %d outside [%d, %d)", i, start, end)
			return
		}
		atomic.AddInt64(&counts[i-start], 1)
	}, 7, 2)

	for i, c := range counts {
		if c != 1 {
			t.Errorf("index %d visited %d times", i+start, c)
		}
	}
}

func TestMultiThreadEmptyRange(t *testing.T) {
	called := false
	MultiThread(5, 5, func(i int) { called = true }, 1, 1)
	MultiThread(5, 2, func(i int) { called = true }, 1, 1)

	if called {
		t.Errorf("f should not be called for an empty range")
	}
}

func TestMultiThreadBadBatchSizes(t *testing.T) {
	var total int64
	MultiThread(0, 10, func(i int) { atomic.AddInt64(&total, 1) }, 0, 0)

	if total != 10 {
		t.Errorf("visited %d of 10 indexes", total)
	}
}
