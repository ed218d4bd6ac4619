// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"testing"
	"unsafe"

	"github.com/segcore/segcore"
)

func TestVirtualMemory_ReserveCommitDecommitRelease(t *testing.T) {
	var vm segcore.VirtualMemory
	if !vm.Reserve(64 * 1024) {
		t.Fatal("Reserve failed")
	}
	defer vm.Release()

	if vm.Addr() == nil {
		t.Fatal("Addr is nil after Reserve")
	}
	if vm.Size() != 0 {
		t.Errorf("Size() = %d, want 0 before Commit", vm.Size())
	}
	if vm.Capacity() < 64*1024 {
		t.Errorf("Capacity() = %d, want >= 64KiB", vm.Capacity())
	}

	if !vm.Commit(4096) {
		t.Fatal("Commit failed")
	}
	if vm.Size() < 4096 {
		t.Errorf("Size() = %d, want >= 4096 after Commit", vm.Size())
	}

	base := vm.Addr()
	buf := unsafe.Slice((*byte)(base), 4096)
	for i := range buf {
		buf[i] = byte(i)
	}
	if buf[100] != 100 {
		t.Fatal("committed memory is not writable/readable")
	}

	if !vm.Decommit(0) {
		t.Fatal("Decommit failed")
	}
	if vm.Size() != 0 {
		t.Errorf("Size() = %d, want 0 after full Decommit", vm.Size())
	}
	if vm.Addr() != base {
		t.Error("base address changed across commit/decommit — breaks self-relative offsets")
	}
}

func TestVirtualMemory_DoubleReserveFails(t *testing.T) {
	var vm segcore.VirtualMemory
	if !vm.Reserve(4096) {
		t.Fatal("first Reserve failed")
	}
	defer vm.Release()
	if vm.Reserve(4096) {
		t.Error("second Reserve on an already-reserved VirtualMemory should fail")
	}
}

func TestVirtualMemory_CommitBeyondCapacityFails(t *testing.T) {
	var vm segcore.VirtualMemory
	if !vm.Reserve(4096) {
		t.Fatal("Reserve failed")
	}
	defer vm.Release()
	if vm.Commit(vm.Capacity() + 1) {
		t.Error("Commit beyond reserved capacity should fail")
	}
}
