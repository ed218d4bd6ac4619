// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import "unsafe"

// DumpScope captures the live byte range of a VirtualAllocator-backed
// region so it can be copied out (or written to disk by the caller) as one
// contiguous, relocatable block, and later reinterpreted in place without
// pointer fixup. Everything allocated through a DumpScope's
// allocator while it is open must only reference other data in the same
// scope via byte offsets from its own address, never via a Go pointer or
// slice header — those are not meaningful once the bytes are copied
// elsewhere. This package's own containers store Go slice headers and are
// therefore NOT dump-safe; DumpScope exists for callers building their own
// offset-addressed structures on top of the allocator layer, not for
// dumping a Sequence/Map/Arena directly.
type DumpScope struct {
	_ noCopy

	alloc *VirtualAllocator
	guard *PopGuard
}

// BeginDump reserves maxBytes of address space, pushes a VirtualAllocator
// over it as the current ThreadLocal allocator, and returns a DumpScope
// tracking it. Returns nil if the reservation fails.
func BeginDump(maxBytes int) *DumpScope {
	alloc := NewVirtualAllocator(maxBytes)
	if alloc == nil {
		return nil
	}
	return &DumpScope{alloc: alloc, guard: defaultScope.Push(alloc)}
}

// Bytes returns the live range [base, base+HighWater) as a slice aliasing
// the reservation directly — no copy. Callers that intend to relocate the
// bytes (write them to a file, send them over a socket) should copy this
// slice before the DumpScope is closed.
func (d *DumpScope) Bytes() []byte {
	n := d.alloc.HighWater()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(d.alloc.Base()), n)
}

// End pops the allocator scope and releases the backing reservation. Any
// offset obtained from this scope's allocator is invalid afterward.
func (d *DumpScope) End() error {
	err := d.guard.Pop()
	if closeErr := d.alloc.Close(); err == nil {
		err = closeErr
	}
	return err
}

// LoadView reinterprets the first bytes of buf as a *T, without copying —
// step 5 of the memory-dump workflow: "obtain a pointer to the dump's
// first byte and reinterpret it as the root type." The caller is
// responsible for ensuring buf was produced by dumping a T laid out by
// this allocator, at the matching alignment; there is no way to verify
// this from the bytes alone.
func LoadView[T any](buf []byte) *T {
	return ReinterpretAt[T](buf, 0)
}

// Materialize copies *view out into a plain, independently owned T, safe
// to mutate and to outlive the dump buffer view was loaded from.
func Materialize[T any](view *T) T {
	return *view
}
