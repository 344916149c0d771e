package threadpool

import "sync"

// Worker is a long-lived goroutine bound at construction to a target
// closure. Notify wakes it to run the target once; Join tells it to
// exit after its current wait and blocks until the goroutine returns.
// The target closure and anything it captures are owned by the
// worker's goroutine for its lifetime. Callers must not assume
// anything they passed in is safe to mutate from elsewhere while the
// worker is running.
type Worker struct {
	target func()
	sema   *Semaphore
	done   chan struct{}

	mu       sync.Mutex
	exitFlag bool
}

// NewWorker starts a worker goroutine running target each time it is
// notified.
func NewWorker(target func()) *Worker {
	w := &Worker{
		target: target,
		sema:   NewSemaphore(),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Worker) run() {
	defer close(w.done)
	for {
		w.sema.Wait()
		if w.shouldExit() {
			return
		}
		w.target()
	}
}

func (w *Worker) shouldExit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.exitFlag
}

// Notify wakes the worker to run its target once.
func (w *Worker) Notify() {
	w.sema.Notify()
}

// Join signals the worker to exit after its current wait and blocks
// until its goroutine has returned.
func (w *Worker) Join() {
	w.mu.Lock()
	w.exitFlag = true
	w.mu.Unlock()
	w.sema.Notify()
	<-w.done
}
