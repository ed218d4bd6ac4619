// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"errors"
	"testing"

	"github.com/segcore/segcore"
)

func TestScope_PushCurrentPop(t *testing.T) {
	scope := segcore.NewScope()
	fba := segcore.NewFixedBufferAllocator(make([]byte, 64))

	guard := scope.Push(fba)
	if scope.Current() != segcore.Allocator(fba) {
		t.Error("Current() did not return the just-pushed allocator")
	}
	if err := guard.Pop(); err != nil {
		t.Fatalf("Pop() = %v, want nil", err)
	}
}

func TestScope_UnbalancedPopReportsError(t *testing.T) {
	segcore.ResetRegistryDiagnostics()
	scope := segcore.NewScope()

	g1 := scope.Push(segcore.NewFixedBufferAllocator(make([]byte, 8)))
	g2 := scope.Push(segcore.NewFixedBufferAllocator(make([]byte, 8)))

	if err := g1.Pop(); !errors.Is(err, segcore.ErrUnbalancedPop) {
		t.Errorf("Pop() out of order = %v, want ErrUnbalancedPop", err)
	}
	if diag := segcore.RegistryDiagnostics(); diag == nil {
		t.Error("RegistryDiagnostics() is nil after an unbalanced pop")
	}

	// Clean up in the correct order so later tests start from a known stack
	// depth.
	_ = g2.Pop()
	segcore.ResetRegistryDiagnostics()
}

func TestPushGlobal_CurrentGlobal(t *testing.T) {
	fba := segcore.NewFixedBufferAllocator(make([]byte, 16))
	guard := segcore.PushGlobal(fba)
	defer guard.Pop()

	if segcore.CurrentGlobal() != segcore.Allocator(fba) {
		t.Error("CurrentGlobal() did not return the just-pushed allocator")
	}
}
