// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import (
	"unsafe"

	"go.uber.org/zap"
)

// reservation is the OS-specific half of VirtualMemory: a reserved address
// range plus the ability to grow/shrink the physically-backed prefix of it.
// vmem_linux.go and vmem_other.go each provide one implementation.
type reservation interface {
	// addr returns the base address of the reservation.
	addr() unsafe.Pointer
	// commit ensures the first size bytes are backed by physical memory.
	// size must be <= the reserved length.
	commit(size int) bool
	// decommit releases physical pages beyond the first size bytes.
	decommit(size int) bool
	// release returns the entire reservation to the OS.
	release()
}

// newReservation reserves at least maxBytes of address space, rounded up to
// the page size, without charging physical memory. Returns (nil, false) on
// failure; no state changes on failure.
var newReservation func(maxBytes int) (reservation, bool)

// VirtualMemory is a page-aligned, growable-and-shrinkable address range:
// reserve once, commit/decommit the physically-backed prefix on demand,
// release on teardown. It is the substrate VirtualAllocator (allocator.go)
// and the memory-dump workflow (dump.go) build on.
//
// VirtualMemory is not safe for concurrent use and must not be copied after
// first use.
type VirtualMemory struct {
	_ noCopy

	res       reservation
	reserved  int
	committed int
}

// Reserve acquires a virtual address range of at least maxBytes, rounded up
// to the page size. No physical pages are charged. Returns false (state
// unchanged) if a reservation already exists or the OS call fails.
func (v *VirtualMemory) Reserve(maxBytes int) bool {
	if v.res != nil || maxBytes <= 0 {
		return false
	}
	res, ok := newReservation(maxBytes)
	if !ok {
		return false
	}
	v.res = res
	v.reserved = roundUpPage(maxBytes)
	v.committed = 0
	return true
}

// Commit ensures the first sizeBytes of the reservation are backed by
// physical memory, rounding up to whole pages. sizeBytes must be <=
// Capacity(). Idempotent when the requested region is already committed.
func (v *VirtualMemory) Commit(sizeBytes int) bool {
	if v.res == nil || sizeBytes < 0 || sizeBytes > v.reserved {
		return false
	}
	target := roundUpPage(sizeBytes)
	if target <= v.committed {
		return true
	}
	if !v.res.commit(target) {
		return false
	}
	logger.Debug("segcore: virtual memory commit", zap.Int("from", v.committed), zap.Int("to", target))
	v.committed = target
	return true
}

// Decommit releases physical pages beyond the first sizeBytes of the
// reservation. Addresses remain reserved and may be recommitted later.
func (v *VirtualMemory) Decommit(sizeBytes int) bool {
	if v.res == nil || sizeBytes < 0 || sizeBytes > v.committed {
		return false
	}
	target := roundUpPage(sizeBytes)
	if target >= v.committed {
		return true
	}
	if !v.res.decommit(target) {
		return false
	}
	logger.Debug("segcore: virtual memory decommit", zap.Int("from", v.committed), zap.Int("to", target))
	v.committed = target
	return true
}

// Release returns the entire reservation to the OS. After Release, the
// object reverts to "no reservation" and may be Reserve'd again.
func (v *VirtualMemory) Release() {
	if v.res == nil {
		return
	}
	v.res.release()
	v.res = nil
	v.reserved = 0
	v.committed = 0
}

// Size returns the number of bytes currently committed.
func (v *VirtualMemory) Size() int { return v.committed }

// Capacity returns the number of bytes reserved.
func (v *VirtualMemory) Capacity() int { return v.reserved }

// Addr returns the base address of the reservation, or nil if none exists.
func (v *VirtualMemory) Addr() unsafe.Pointer {
	if v.res == nil {
		return nil
	}
	return v.res.addr()
}

func roundUpPage(n int) int {
	p := int(PageSize)
	if p <= 0 {
		p = 4096
	}
	return (n + p - 1) / p * p
}
