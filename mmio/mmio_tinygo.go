//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Direct performs volatile loads and stores at physical addresses.
type Direct struct{}

func (Direct) Load(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (Direct) Store(addr uintptr, value uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), value)
}
