// Package mmio is the single point of raw register access.
//
// Everything above this package talks to hardware through a Bus, so the same
// driver code runs against real memory on the chip and against a simulator
// on the host.
package mmio

// Bus is a 32-bit register space addressed by absolute physical address.
type Bus interface {
	Load(addr uintptr) uint32
	Store(addr uintptr, value uint32)
}
