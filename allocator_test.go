// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"testing"
	"unsafe"

	"github.com/segcore/segcore"
)

func TestRuntimeAllocator_AllocateReallocateRelease(t *testing.T) {
	a := segcore.NewGlobalAllocator()
	p, ok := a.Allocate(16, 8)
	if !ok || p == nil {
		t.Fatal("Allocate failed")
	}
	buf := unsafe.Slice((*byte)(p), 16)
	for i := range buf {
		buf[i] = byte(i + 1)
	}

	np, ok := a.Reallocate(p, 16, 32)
	if !ok {
		t.Fatal("Reallocate failed")
	}
	grown := unsafe.Slice((*byte)(np), 32)
	for i := 0; i < 16; i++ {
		if grown[i] != byte(i+1) {
			t.Fatalf("Reallocate did not preserve byte %d: got %d", i, grown[i])
		}
	}

	a.Release(np, 32) // no-op for the runtime allocator, must not panic
}

func TestFixedBufferAllocator_BumpAndRollback(t *testing.T) {
	buf := make([]byte, 64)
	a := segcore.NewFixedBufferAllocator(buf)

	p1, ok := a.Allocate(8, 1)
	if !ok {
		t.Fatal("first Allocate failed")
	}
	if a.Used() != 8 {
		t.Errorf("Used() = %d, want 8", a.Used())
	}

	p2, ok := a.Allocate(8, 1)
	if !ok {
		t.Fatal("second Allocate failed")
	}
	if p1 == p2 {
		t.Error("two live allocations aliased the same address")
	}

	// Release rolls back only the most recent allocation.
	a.Release(p2, 8)
	if a.Used() != 8 {
		t.Errorf("Used() after rollback = %d, want 8", a.Used())
	}
	a.Release(p1, 8) // not the most recent anymore — no-op
	if a.Used() != 8 {
		t.Errorf("Used() after no-op release = %d, want 8", a.Used())
	}
}

func TestFixedBufferAllocator_OverflowFails(t *testing.T) {
	a := segcore.NewFixedBufferAllocator(make([]byte, 8))
	if _, ok := a.Allocate(16, 1); ok {
		t.Error("Allocate beyond buffer capacity should fail")
	}
}

func TestVirtualAllocator_GrowsAndCommits(t *testing.T) {
	a := segcore.NewVirtualAllocator(1 << 20)
	if a == nil {
		t.Fatal("NewVirtualAllocator failed")
	}
	defer a.Close()

	p, ok := a.Allocate(128, 8)
	if !ok {
		t.Fatal("Allocate failed")
	}
	if p != a.Base() {
		t.Error("first allocation should start at the reservation's base address")
	}
	if a.HighWater() != 128 {
		t.Errorf("HighWater() = %d, want 128", a.HighWater())
	}
}
