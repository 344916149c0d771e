package threadpool

import (
	"sync/atomic"
	"testing"
)

func TestPoolBarrierDiscipline(t *testing.T) {
	const numWorkers = 4
	const iters = 40

	var counters [numWorkers]int64

	p := New(numWorkers)
	for i := 0; i < numWorkers; i++ {
		idx := i
		p.Emplace(idx, func() { atomic.AddInt64(&counters[idx], 1) })
	}
	defer p.Join()

	for iter := 0; iter < iters; iter++ {
		p.Process()
		for i := 0; i < numWorkers; i++ {
			want := int64(iter + 1)
			if got := atomic.LoadInt64(&counters[i]); got != want {
				t.Fatalf("after Process() call %d, worker %d ran %d times, want %d", iter+1, i, got, want)
			}
		}
	}
}

func TestPoolJoinStopsWorkers(t *testing.T) {
	p := New(2)
	var n int64
	p.Emplace(0, func() { atomic.AddInt64(&n, 1) })
	p.Emplace(1, func() { atomic.AddInt64(&n, 1) })

	p.Process()
	if got := atomic.LoadInt64(&n); got != 2 {
		t.Fatalf("n = %d, want 2", got)
	}

	p.Join()
	// Workers are gone; nothing left to assert beyond Join returning.
}
