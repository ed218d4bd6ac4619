// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import "unsafe"

// AllocatorKind names which registry stack an Allocator participates in
// when pushed.
type AllocatorKind int

const (
	// Global is the process-wide allocator stack.
	Global AllocatorKind = iota
	// ThreadLocal is the per-Scope allocator stack.
	ThreadLocal
)

func (k AllocatorKind) String() string {
	if k == ThreadLocal {
		return "thread-local"
	}
	return "global"
}

// Allocator is the uniform allocation interface every container in this
// package requests memory through via the current allocator (registry.go),
// consulted at the moment an allocation is required, not at construction.
type Allocator interface {
	// Allocate returns a pointer to size bytes aligned to align, or
	// (nil, false) on failure. State is unchanged on failure.
	Allocate(size, align int) (unsafe.Pointer, bool)

	// Reallocate resizes the block at p (of oldSize bytes) to newSize
	// bytes, preserving min(oldSize, newSize) leading bytes. Returns the
	// same pointer when the existing block's capacity already covers
	// newSize. Returns (nil, false) on failure, leaving p valid at its old
	// size.
	Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool)

	// Release returns the block at p (of size bytes) to the allocator. May
	// be a no-op for bump-style allocators.
	Release(p unsafe.Pointer, size int)
}

// runtimeAllocator forwards to Go's own runtime allocator. GlobalAllocator
// and ThreadLocalAllocator are both backed by it, differing only in which
// registry stack they participate in, since Go has a single runtime
// allocator shared by every goroutine.
type runtimeAllocator struct{ kind AllocatorKind }

// NewGlobalAllocator returns the default Global-stack allocator.
func NewGlobalAllocator() Allocator { return runtimeAllocator{kind: Global} }

// NewThreadLocalAllocator returns the default ThreadLocal-stack allocator.
func NewThreadLocalAllocator() Allocator { return runtimeAllocator{kind: ThreadLocal} }

func (a runtimeAllocator) Allocate(size, align int) (unsafe.Pointer, bool) {
	if size < 0 {
		return nil, false
	}
	if size == 0 {
		return nil, true
	}
	buf := make([]byte, size)
	return unsafe.Pointer(unsafe.SliceData(buf)), true
}

func (a runtimeAllocator) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	if newSize <= oldSize {
		return p, true
	}
	np, ok := a.Allocate(newSize, 0)
	if !ok {
		return nil, false
	}
	if oldSize > 0 {
		copy(unsafe.Slice((*byte)(np), oldSize), unsafe.Slice((*byte)(p), oldSize))
	}
	return np, true
}

func (a runtimeAllocator) Release(p unsafe.Pointer, size int) {
	// Go's GC reclaims it once unreferenced; nothing to do explicitly.
}

// FixedBufferAllocator bump-allocates from a caller-supplied span of bytes.
// Release is a no-op except for the most recent allocation, which it can
// roll back. Allocation beyond the buffer returns (nil, false).
//
// AlignedMem, AlignedMemBlock and CacheLineAlignedMem in alignment.go are
// the recommended way to obtain the backing span for a FixedBufferAllocator
// that needs a page- or cache-line-aligned base address.
type FixedBufferAllocator struct {
	_ noCopy

	buf        []byte
	offset     int
	lastOffset int
	lastSize   int
	hasLast    bool
}

// NewFixedBufferAllocator wraps buf as a bump allocator. buf's backing
// array is used directly; the caller must keep it alive for as long as any
// pointer handed out by Allocate is in use.
func NewFixedBufferAllocator(buf []byte) *FixedBufferAllocator {
	return &FixedBufferAllocator{buf: buf}
}

// Cap returns the total size of the backing buffer.
func (a *FixedBufferAllocator) Cap() int { return len(a.buf) }

// Used returns the number of bytes currently bump-allocated.
func (a *FixedBufferAllocator) Used() int { return a.offset }

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) &^ (align - 1)
}

func (a *FixedBufferAllocator) Allocate(size, align int) (unsafe.Pointer, bool) {
	if size < 0 {
		return nil, false
	}
	start := alignUp(a.offset, max(align, 1))
	if start+size > len(a.buf) {
		return nil, false
	}
	a.offset = start + size
	a.lastOffset, a.lastSize, a.hasLast = start, size, true
	return unsafe.Pointer(&a.buf[start]), true
}

func (a *FixedBufferAllocator) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	if newSize <= oldSize {
		return p, true
	}
	if a.hasLast && p == unsafe.Pointer(&a.buf[a.lastOffset]) && a.lastSize == oldSize {
		// Most recent allocation: grow in place.
		grow := newSize - oldSize
		if a.offset+grow > len(a.buf) {
			return nil, false
		}
		a.offset += grow
		a.lastSize = newSize
		return p, true
	}
	np, ok := a.Allocate(newSize, 0)
	if !ok {
		return nil, false
	}
	copy(unsafe.Slice((*byte)(np), oldSize), unsafe.Slice((*byte)(p), oldSize))
	return np, true
}

func (a *FixedBufferAllocator) Release(p unsafe.Pointer, size int) {
	if a.hasLast && p == unsafe.Pointer(&a.buf[a.lastOffset]) && a.lastSize == size {
		a.offset = a.lastOffset
		a.hasLast = false
	}
}

// VirtualAllocator wraps a VirtualMemory, advancing a high-water mark and
// committing additional pages as needed. Release is a no-op except for the
// most recent allocation, which it rolls back, lowering the high-water mark
// and decommitting the pages past it. This is the allocator the memory
// dump workflow (dump.go) requires: every segment allocated through it can
// be addressed as an offset from the reservation's stable base address.
type VirtualAllocator struct {
	_ noCopy

	vm         *VirtualMemory
	offset     int
	lastOffset int
	lastSize   int
	hasLast    bool
}

// NewVirtualAllocator reserves maxBytes of address space and returns an
// allocator bump-allocating within it. Returns nil if the reservation
// fails.
func NewVirtualAllocator(maxBytes int) *VirtualAllocator {
	vm := &VirtualMemory{}
	if !vm.Reserve(maxBytes) {
		return nil
	}
	return &VirtualAllocator{vm: vm}
}

// Base returns the stable base address of the backing reservation.
func (a *VirtualAllocator) Base() unsafe.Pointer { return a.vm.Addr() }

// HighWater returns the number of bytes bump-allocated so far; this is the
// length of the live byte range a memory dump should copy out.
func (a *VirtualAllocator) HighWater() int { return a.offset }

// Close releases the backing virtual memory reservation. Must be called
// once the allocator (and everything allocated through it) is no longer
// needed; Go has no destructors to do this automatically.
func (a *VirtualAllocator) Close() error {
	a.vm.Release()
	return nil
}

func (a *VirtualAllocator) Allocate(size, align int) (unsafe.Pointer, bool) {
	if size < 0 {
		return nil, false
	}
	start := alignUp(a.offset, max(align, 1))
	end := start + size
	if end > a.vm.Capacity() {
		return nil, false
	}
	if end > a.vm.Size() {
		if !a.vm.Commit(end) {
			return nil, false
		}
	}
	a.offset = end
	a.lastOffset, a.lastSize, a.hasLast = start, size, true
	return unsafe.Add(a.vm.Addr(), start), true
}

func (a *VirtualAllocator) Reallocate(p unsafe.Pointer, oldSize, newSize int) (unsafe.Pointer, bool) {
	if newSize <= oldSize {
		return p, true
	}
	if a.hasLast && p == unsafe.Add(a.vm.Addr(), a.lastOffset) && a.lastSize == oldSize {
		grow := newSize - oldSize
		end := a.offset + grow
		if end > a.vm.Capacity() {
			return nil, false
		}
		if end > a.vm.Size() && !a.vm.Commit(end) {
			return nil, false
		}
		a.offset = end
		a.lastSize = newSize
		return p, true
	}
	np, ok := a.Allocate(newSize, 0)
	if !ok {
		return nil, false
	}
	copy(unsafe.Slice((*byte)(np), oldSize), unsafe.Slice((*byte)(p), oldSize))
	return np, true
}

func (a *VirtualAllocator) Release(p unsafe.Pointer, size int) {
	if a.hasLast && p == unsafe.Add(a.vm.Addr(), a.lastOffset) && a.lastSize == size {
		a.offset = a.lastOffset
		a.hasLast = false
		_ = a.vm.Decommit(alignUp(a.offset, int(PageSize)))
	}
}
