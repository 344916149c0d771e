package threadpool

import (
	"testing"
	"time"
)

func TestSemaphoreWaitBlocksUntilNotify(t *testing.T) {
	s := NewSemaphore()
	done := make(chan struct{})

	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Notify was called")
	case <-time.After(20 * time.Millisecond):
	}

	s.Notify()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Notify")
	}
}

func TestSemaphoreIdempotentNotify(t *testing.T) {
	s := NewSemaphore()

	// Two notifications before any wait collapse into one wakeup.
	s.Notify()
	s.Notify()

	woke := make(chan struct{})
	go func() {
		s.Wait()
		woke <- struct{}{}
	}()

	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("first Wait never woke")
	}

	select {
	case <-woke:
		t.Fatal("second Wait woke without a matching Notify")
	case <-time.After(20 * time.Millisecond):
	}

	s.Notify()

	go func() {
		s.Wait()
		woke <- struct{}{}
	}()
	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Fatal("second Wait never woke after its own Notify")
	}
}
