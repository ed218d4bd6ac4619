// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"testing"

	"github.com/segcore/segcore"
)

func TestBoundedSequence_FailsInsteadOfSpilling(t *testing.T) {
	var s segcore.BoundedSequence[int, segcore.Inline4[int], *segcore.Inline4[int]]
	for i := 0; i < 4; i++ {
		if !s.PushBack(i) {
			t.Fatalf("PushBack(%d) failed within bound", i)
		}
	}
	if s.PushBack(4) {
		t.Fatal("PushBack beyond inline capacity should fail, not allocate")
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4 after a rejected overflow push", s.Len())
	}
}

func TestBoundedSequence_PopAndReinsert(t *testing.T) {
	var s segcore.BoundedSequence[int, segcore.Inline4[int], *segcore.Inline4[int]]
	s.PushBack(1)
	s.PushBack(2)
	v, ok := s.PopBack()
	if !ok || v != 2 {
		t.Fatalf("PopBack() = (%d, %v), want (2, true)", v, ok)
	}
	if !s.PushBack(3) {
		t.Fatal("PushBack after PopBack should succeed")
	}
	got := s.Data()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("Data() = %v, want [1 3]", got)
	}
}

func TestBoundedSequence_PushFrontPopFront(t *testing.T) {
	var s segcore.BoundedSequence[int, segcore.Inline4[int], *segcore.Inline4[int]]
	s.PushFront(3)
	s.PushFront(2)
	s.PushFront(1)
	if !s.PushFront(0) {
		t.Fatal("PushFront within bound should succeed")
	}
	if s.PushFront(-1) {
		t.Fatal("PushFront beyond inline capacity should fail")
	}
	v, ok := s.PopFront()
	if !ok || v != 0 {
		t.Fatalf("PopFront() = (%d, %v), want (0, true)", v, ok)
	}
}

func TestBoundedSequence_AppendFailsBeyondCapacity(t *testing.T) {
	var s segcore.BoundedSequence[int, segcore.Inline4[int], *segcore.Inline4[int]]
	if !s.Append(1, 2, 3, 4) {
		t.Fatal("Append within bound should succeed")
	}
	if s.Append(5) {
		t.Fatal("Append beyond inline capacity should fail, not allocate")
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4 after a rejected overflow append", s.Len())
	}
}

func TestBoundedSequence_RemoveAllAndResize(t *testing.T) {
	var s segcore.BoundedSequence[int, segcore.Inline4[int], *segcore.Inline4[int]]
	s.Append(1, 2, 3, 4)
	removed := s.RemoveAll(func(v int) bool { return v%2 == 0 })
	if removed != 2 {
		t.Fatalf("RemoveAll removed %d, want 2", removed)
	}
	if !s.Resize(4) {
		t.Fatal("Resize within capacity should succeed")
	}
	if s.Resize(5) {
		t.Fatal("Resize beyond inline capacity should fail")
	}
	if !s.ShrinkToFit() {
		t.Fatal("ShrinkToFit should always report success")
	}
}
