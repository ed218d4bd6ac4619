// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"testing"

	"github.com/segcore/segcore"
)

func TestSet_AddDedupesAndPreservesOrder(t *testing.T) {
	s := segcore.NewSet[int](0)
	if !s.Add(3) {
		t.Fatal("first Add(3) should report true")
	}
	if s.Add(3) {
		t.Fatal("second Add(3) should report false (duplicate)")
	}
	s.Add(1)
	s.Add(2)
	want := []int{3, 1, 2}
	got := s.Data()
	if len(got) != len(want) {
		t.Fatalf("Data() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Data() = %v, want %v", got, want)
		}
	}
}

func TestSet_Remove(t *testing.T) {
	s := segcore.NewSet[string](0)
	s.Add("a")
	s.Add("b")
	if !s.Remove("a") {
		t.Fatal("Remove(a) reported false for a present member")
	}
	if s.Contains("a") {
		t.Error("Contains(a) true after Remove")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
