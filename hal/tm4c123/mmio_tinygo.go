//go:build tinygo

package tm4c123

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO is the device bus: volatile loads and stores at physical addresses.
type MMIO struct{}

func (MMIO) Load(addr uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(addr)))
}

func (MMIO) Store(addr uintptr, value uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(addr)), value)
}
