//go:build !tinygo

package irq

import (
	"sync"
	"sync/atomic"
)

// State is a placeholder for interrupt state on regular Go
type State uintptr

var (
	// section serializes critical sections across goroutines, standing in for
	// a single core with interrupts masked.
	section sync.Mutex

	masked atomic.Bool

	pendingMu sync.Mutex
	pending   []func()
)

// Disable enters the critical section. Sections do not nest.
func Disable() State {
	section.Lock()
	pendingMu.Lock()
	masked.Store(true)
	pendingMu.Unlock()
	return 0
}

// Restore leaves the critical section and runs handlers raised while it was held.
func Restore(state State) {
	pendingMu.Lock()
	masked.Store(false)
	pendingMu.Unlock()
	section.Unlock()
	drain()
}

// Raise simulates an interrupt firing. The handler runs immediately unless a
// critical section is active, in which case it runs when the section ends.
func Raise(isr func()) {
	pendingMu.Lock()
	if masked.Load() {
		pending = append(pending, isr)
		pendingMu.Unlock()
		return
	}
	pendingMu.Unlock()
	isr()
}

// Pending returns the number of handlers waiting for the section to end.
func Pending() int {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	return len(pending)
}

// drain runs queued handlers until the queue is empty or another section
// begins; that section's Restore picks up the rest.
func drain() {
	for {
		pendingMu.Lock()
		if masked.Load() || len(pending) == 0 {
			pendingMu.Unlock()
			return
		}
		isr := pending[0]
		pending = pending[1:]
		pendingMu.Unlock()
		isr()
	}
}
