// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import (
	"unsafe"

	"github.com/segcore/segcore/internal"
)

// AlignedMem returns a byte slice with the specified size and starting
// address aligned to pageSize. Useful for FixedBufferAllocator backing
// storage that needs a page-aligned base address.
//
// The returned slice points into a larger allocation; its length and
// capacity are both size.
func AlignedMem(size int, pageSize uintptr) []byte {
	p := make([]byte, uintptr(size)+pageSize-1)
	base := unsafe.Pointer(unsafe.SliceData(p))
	offset := ((uintptr(base)+pageSize-1)/pageSize)*pageSize - uintptr(base)
	return unsafe.Slice((*byte)(unsafe.Add(base, offset)), size)
}

// AlignedMemBlock returns a single page-aligned block using the
// package-level PageSize.
func AlignedMemBlock() []byte {
	return AlignedMem(int(PageSize), PageSize)
}

// CacheLineSize is the CPU L1 cache line size for the current architecture,
// detected at compile time.
const CacheLineSize = internal.CacheLineSize

// CacheLineAlignedMem returns a byte slice with the specified size and
// starting address aligned to the CPU cache line size. Useful for
// FixedBufferAllocator spans backing containers that must avoid false
// sharing between unrelated segments.
func CacheLineAlignedMem(size int) []byte {
	return AlignedMem(size, uintptr(CacheLineSize))
}

// ReinterpretSlice reinterprets n elements of T starting at byte offset
// within b as a slice view — no copy, same backing memory. This is the
// general form of memory-dump re-materialization: obtain a pointer to the
// dump's first byte and reinterpret it as the root type. The caller must
// ensure offset+n*sizeof(T) <= len(b) and that b's alignment satisfies T's
// alignment requirement.
func ReinterpretSlice[T any](b []byte, offset int, n int) []T {
	if n < 1 {
		panic("segcore: invalid reinterpret element count")
	}
	base := unsafe.Pointer(unsafe.SliceData(b))
	return unsafe.Slice((*T)(unsafe.Add(base, offset)), n)
}

// ReinterpretAt reinterprets the bytes starting at offset within b as a
// single *T, without copying.
func ReinterpretAt[T any](b []byte, offset int) *T {
	base := unsafe.Pointer(unsafe.SliceData(b))
	return (*T)(unsafe.Add(base, offset))
}
