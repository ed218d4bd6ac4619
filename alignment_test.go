// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"testing"
	"unsafe"

	"github.com/segcore/segcore"
)

func TestAlignedMem_PageAlignment(t *testing.T) {
	const size = 8192
	mem := segcore.AlignedMem(size, segcore.PageSize)

	if len(mem) != size {
		t.Errorf("AlignedMem length = %d, want %d", len(mem), size)
	}

	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
	if ptr%segcore.PageSize != 0 {
		t.Errorf("AlignedMem not page-aligned: address %#x %% %d = %d", ptr, segcore.PageSize, ptr%segcore.PageSize)
	}
}

func TestAlignedMemBlock(t *testing.T) {
	block := segcore.AlignedMemBlock()
	if uintptr(len(block)) != segcore.PageSize {
		t.Errorf("AlignedMemBlock length = %d, want %d", len(block), segcore.PageSize)
	}
}

func TestCacheLineAlignedMem(t *testing.T) {
	const size = 256
	mem := segcore.CacheLineAlignedMem(size)
	if len(mem) != size {
		t.Errorf("CacheLineAlignedMem length = %d, want %d", len(mem), size)
	}
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(mem)))
	if ptr%uintptr(segcore.CacheLineSize) != 0 {
		t.Errorf("CacheLineAlignedMem not cache-line aligned: address %#x", ptr)
	}
}

func TestReinterpretSlice(t *testing.T) {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(i)
	}
	view := segcore.ReinterpretSlice[uint32](b, 0, 4)
	if len(view) != 4 {
		t.Fatalf("len(view) = %d, want 4", len(view))
	}
	var want uint32
	for i := 0; i < 4; i++ {
		want |= uint32(b[i]) << (8 * i)
	}
	if view[0] != want {
		t.Errorf("view[0] = %#x, want %#x", view[0], want)
	}
}

func TestReinterpretAt(t *testing.T) {
	type pair struct{ A, B uint32 }
	b := make([]byte, unsafe.Sizeof(pair{})+8)
	p := segcore.ReinterpretAt[pair](b, 8)
	p.A, p.B = 1, 2
	q := segcore.ReinterpretAt[pair](b, 8)
	if q.A != 1 || q.B != 2 {
		t.Errorf("ReinterpretAt did not alias the same bytes: got %+v", *q)
	}
}
