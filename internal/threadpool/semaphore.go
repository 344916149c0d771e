// Package threadpool provides the one-shot notify/wait primitives the
// extrapolation stepper uses to fan a macro-step out across a static
// set of long-lived workers and barrier-wait for all of them to
// finish. It is kept internal: callers of the odex package only ever
// see [odex.Extrapolator], never the pool it owns.
package threadpool

import "sync"

// Semaphore is a one-shot binary notifier. Exactly one goroutine is
// expected to call Wait at a time; Notify wakes it. Notifications
// issued while the semaphore is already signalled collapse into one:
// they are idempotent until consumed by a Wait.
type Semaphore struct {
	mu    sync.Mutex
	cond  sync.Cond
	ready bool
}

// NewSemaphore returns an unsignalled Semaphore.
func NewSemaphore() *Semaphore {
	s := &Semaphore{}
	s.cond.L = &s.mu
	return s
}

// Notify signals the semaphore, waking the waiter if one is blocked in
// Wait. A Notify issued before any Wait is observed is not lost.
func (s *Semaphore) Notify() {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.cond.Signal()
}

// Wait blocks until the semaphore is signalled, then atomically clears
// it and returns.
func (s *Semaphore) Wait() {
	s.mu.Lock()
	for !s.ready {
		s.cond.Wait()
	}
	s.ready = false
	s.mu.Unlock()
}
