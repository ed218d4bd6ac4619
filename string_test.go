// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore_test

import (
	"testing"

	"github.com/segcore/segcore"
)

func TestString_AppendAndNULInvariant(t *testing.T) {
	s := segcore.NewString(segcore.UTF8)
	defer s.Release()

	s.Append(segcore.ViewString("hello"))
	s.Append(segcore.ViewString(" world"))

	if s.String() != "hello world" {
		t.Errorf("String() = %q, want %q", s.String(), "hello world")
	}
	// Bytes() excludes the terminator, but it must still be present right
	// after it in the backing storage.
	raw := s.Bytes()
	if len(raw) != s.Len() {
		t.Fatalf("Bytes() length = %d, want Len() = %d", len(raw), s.Len())
	}
	if term := raw[:len(raw)+1][len(raw)]; term != 0 {
		t.Errorf("byte after Bytes() = %#x, want NUL terminator", term)
	}
}

func TestString_Clear(t *testing.T) {
	s := segcore.NewString(segcore.UTF8)
	defer s.Release()
	s.Append(segcore.ViewString("content"))
	s.Clear()
	if !s.IsEmpty() {
		t.Error("IsEmpty() should be true after Clear")
	}
	if s.String() != "" {
		t.Errorf("String() = %q, want empty after Clear", s.String())
	}
}

func TestAppendEncoded_ASCIIToUTF8(t *testing.T) {
	dst := segcore.NewString(segcore.UTF8)
	defer dst.Release()
	src := segcore.NewStringView(segcore.ASCII, []byte("plain"))
	if !segcore.AppendEncoded(dst, src) {
		t.Fatal("AppendEncoded(ASCII -> UTF-8) should always succeed")
	}
	if dst.String() != "plain" {
		t.Errorf("dst.String() = %q, want %q", dst.String(), "plain")
	}
}

func TestAppendEncoded_UTF8ToUTF16LEAndBack(t *testing.T) {
	original := "h中é😀"

	u16 := segcore.NewString(segcore.UTF16LE)
	defer u16.Release()
	if !segcore.AppendEncoded(u16, segcore.ViewString(original)) {
		t.Fatal("AppendEncoded(UTF-8 -> UTF-16LE) failed")
	}

	back := segcore.NewString(segcore.UTF8)
	defer back.Release()
	if !segcore.AppendEncoded(back, u16.View()) {
		t.Fatal("AppendEncoded(UTF-16LE -> UTF-8) failed")
	}

	if back.String() != original {
		t.Errorf("round trip = %q, want %q", back.String(), original)
	}
}

func TestAppendEncoded_NonASCIIIntoASCIIFails(t *testing.T) {
	dst := segcore.NewString(segcore.ASCII)
	defer dst.Release()
	src := segcore.ViewString("café")
	if segcore.AppendEncoded(dst, src) {
		t.Fatal("transcoding a non-ASCII code point into ASCII should fail, not truncate")
	}
}
