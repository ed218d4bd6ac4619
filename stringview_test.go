// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"testing"

	"github.com/segcore/segcore"
)

func TestStringView_Equal(t *testing.T) {
	a := segcore.ViewString("hello")
	b := segcore.ViewString("hello")
	c := segcore.ViewString("world")
	if !a.Equal(b) {
		t.Error("identical UTF-8 views should be Equal")
	}
	if a.Equal(c) {
		t.Error("distinct views should not be Equal")
	}
}

func TestStringView_Equal_ASCIIAndUTF8AreByteCompatible(t *testing.T) {
	ascii := segcore.NewStringView(segcore.ASCII, []byte("plain"))
	utf8 := segcore.ViewString("plain")
	if !ascii.Equal(utf8) {
		t.Error("a byte-identical ASCII view and UTF-8 view should be Equal")
	}
	if !utf8.Equal(ascii) {
		t.Error("Equal should be symmetric across ASCII/UTF-8")
	}
	u16 := segcore.NewStringView(segcore.UTF16LE, []byte("plain"))
	if ascii.Equal(u16) || u16.Equal(ascii) {
		t.Error("UTF-16LE should never compare equal to ASCII/UTF-8 by raw bytes")
	}
}

func TestStringView_Slice(t *testing.T) {
	v := segcore.ViewString("hello world")
	sub := v.Slice(6, 11)
	if sub.String() != "world" {
		t.Errorf("Slice(6,11).String() = %q, want %q", sub.String(), "world")
	}
}

func TestASCIIIterator(t *testing.T) {
	v := segcore.NewStringView(segcore.ASCII, []byte("abc"))
	it := v.Iterator()
	var got []rune
	for {
		r, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}
	want := []rune{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUTF8Iterator_MultibyteRunes(t *testing.T) {
	v := segcore.ViewString("aé中") // a, é, 中
	it := v.Iterator()
	var got []rune
	for {
		r, _, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}
	want := []rune{'a', 'é', '中'}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUTF8Iterator_AdvanceUntilAndIf(t *testing.T) {
	v := segcore.ViewString("key=value")
	it := v.Iterator()
	if !it.AdvanceUntil(func(r rune) bool { return r == '=' }) {
		t.Fatal("AdvanceUntil should find '='")
	}
	before := it.SliceFromStartUntil(4)
	if before.String() != "key=" {
		t.Errorf("SliceFromStartUntil = %q, want %q", before.String(), "key=")
	}
	if !it.AdvanceIf(func(r rune) bool { return r == '=' }) {
		t.Fatal("AdvanceIf should consume '='")
	}
	r, _, ok := it.Next()
	if !ok || r != 'v' {
		t.Fatalf("Next() after AdvanceIf = %q, %v, want 'v', true", r, ok)
	}
}

func TestUTF8Iterator_PrevAndByteDistance(t *testing.T) {
	v := segcore.ViewString("aé中")
	fwd := v.Iterator()
	for {
		_, _, ok := fwd.Next()
		if !ok {
			break
		}
	}
	back := v.Iterator()
	r, size, ok := fwd.Prev()
	if !ok || r != '中' || size != 3 {
		t.Fatalf("Prev() = %q, %d, %v, want '中', 3, true", r, size, ok)
	}
	if d := fwd.ByteDistance(back); d != len("aé") {
		t.Errorf("ByteDistance = %d, want %d", d, len("aé"))
	}
}

func TestUTF8Iterator_ReverseAdvanceIf(t *testing.T) {
	v := segcore.ViewString("abc")
	it := v.Iterator()
	it.Next()
	it.Next()
	it.Next()
	if !it.ReverseAdvanceIf(func(r rune) bool { return r == 'c' }) {
		t.Fatal("ReverseAdvanceIf should consume trailing 'c'")
	}
	if it.ReverseAdvanceIf(func(r rune) bool { return r == 'c' }) {
		t.Fatal("ReverseAdvanceIf should not match 'b' against 'c'")
	}
}

func TestUTF16Iterator_SurrogatePair(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded as UTF-16LE surrogate pair D83D DE00.
	data := []byte{0x3D, 0xD8, 0x00, 0xDE}
	v := segcore.NewStringView(segcore.UTF16LE, data)
	it := v.Iterator()
	r, size, ok := it.Next()
	if !ok {
		t.Fatal("Next() returned ok=false")
	}
	if r != 0x1F600 {
		t.Errorf("r = %#x, want %#x", r, 0x1F600)
	}
	if size != 4 {
		t.Errorf("size = %d, want 4", size)
	}
	if _, _, ok := it.Next(); ok {
		t.Error("Next() should be exhausted after the single surrogate pair")
	}
}
