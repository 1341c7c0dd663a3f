// Package irq provides the critical sections used around read-modify-write
// sequences on registers shared between pins.
//
// On TinyGo Disable masks interrupts on the current core. On the host the
// same calls serialize goroutines and defer handlers queued with Raise, which
// lets tests reproduce an interrupt landing inside a register update.
package irq
