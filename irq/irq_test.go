package irq

import (
	"sync"
	"testing"
)

func TestRaiseOutsideSectionRunsImmediately(t *testing.T) {
	ran := false
	Raise(func() { ran = true })
	if !ran {
		t.Error("handler did not run outside a critical section")
	}
}

func TestRaiseInsideSectionIsDeferred(t *testing.T) {
	var order []string

	state := Disable()
	Raise(func() { order = append(order, "isr") })
	if Pending() != 1 {
		t.Errorf("expected 1 pending handler, got %d", Pending())
	}
	order = append(order, "section")
	Restore(state)

	if len(order) != 2 || order[0] != "section" || order[1] != "isr" {
		t.Errorf("expected [section isr], got %v", order)
	}
	if Pending() != 0 {
		t.Errorf("pending handlers left after Restore: %d", Pending())
	}
}

func TestHandlerMayEnterSection(t *testing.T) {
	count := 0
	state := Disable()
	Raise(func() {
		s := Disable()
		count++
		Restore(s)
	})
	Restore(state)
	if count != 1 {
		t.Errorf("handler ran %d times, want 1", count)
	}
}

func TestSectionsSerialize(t *testing.T) {
	const workers = 8
	const rounds = 1000
	shared := 0

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				s := Disable()
				v := shared
				shared = v + 1
				Restore(s)
			}
		}()
	}
	wg.Wait()

	if shared != workers*rounds {
		t.Errorf("lost updates: got %d, want %d", shared, workers*rounds)
	}
}

func TestQueuedHandlersWaitForNewSection(t *testing.T) {
	var mu sync.Mutex
	inSection := false
	var order []string
	note := func(s string) {
		mu.Lock()
		order = append(order, s)
		mu.Unlock()
	}

	done := make(chan struct{})
	state := Disable()
	Raise(func() {
		// the first handler opens a section and hands it to another goroutine
		s := Disable()
		mu.Lock()
		inSection = true
		mu.Unlock()
		note("first")
		go func() {
			mu.Lock()
			inSection = false
			mu.Unlock()
			Restore(s)
		}()
	})
	Raise(func() {
		mu.Lock()
		if inSection {
			t.Error("queued handler ran inside another section")
		}
		mu.Unlock()
		note("second")
		close(done)
	})
	Restore(state)
	<-done

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}
