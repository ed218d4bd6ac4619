// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import "unicode/utf8"

// String is an owning, mutable text buffer that always carries a trailing
// NUL byte not counted in Len, so a *String's Bytes() can be handed to any
// API expecting a C-style terminated buffer without a copy.
type String struct {
	_ noCopy

	enc  Encoding
	data Sequence[byte]
}

// NewString returns an empty, NUL-terminated String in the given encoding.
func NewString(enc Encoding) *String {
	s := &String{enc: enc}
	s.data.PushBack(0)
	return s
}

// StringFrom copies the bytes of v into a new owning String.
func StringFrom(v StringView) *String {
	s := NewString(v.Encoding())
	s.Append(v)
	return s
}

func (s *String) Encoding() Encoding { return s.enc }

// Len returns the number of content bytes, excluding the trailing NUL.
func (s *String) Len() int { return s.data.Len() - 1 }

func (s *String) IsEmpty() bool { return s.Len() == 0 }

// Bytes returns the content bytes, excluding the trailing NUL. The slice
// aliases the String's storage and is invalidated by any mutation.
func (s *String) Bytes() []byte { return s.data.Data()[:s.Len()] }

// View returns a borrowed StringView over the current content.
func (s *String) View() StringView { return NewStringView(s.enc, s.Bytes()) }

// String copies the content out as a Go string (see StringView.String for
// the UTF16LE caveat).
func (s *String) String() string { return s.View().String() }

// Clear empties the string back to zero length, keeping the NUL invariant.
func (s *String) Clear() {
	s.data.Clear()
	s.data.PushBack(0)
}

// Append appends v's bytes, which must share s's encoding — callers mixing
// encodings should transcode with AppendEncoded instead.
func (s *String) Append(v StringView) bool {
	if v.Encoding() != s.enc {
		return false
	}
	return s.data.InsertSlice(s.Len(), v.Bytes())
}

// Release returns the string's backing storage to its allocator.
func (s *String) Release() { s.data.Release() }

// AppendEncoded transcodes src (any encoding) into dst's encoding and
// appends the result, copying bytes directly (without validating them) when
// src already has dst's encoding. Otherwise it fails (returns false, dst
// unchanged) if src contains a byte sequence that is invalid in its own
// encoding, or a code point dst's encoding cannot represent — ASCII cannot
// represent any rune above 0x7F — rather than silently truncating or
// substituting a replacement character.
func AppendEncoded(dst *String, src StringView) bool {
	if src.Encoding() == dst.enc {
		return dst.Append(src)
	}
	it := src.Iterator()
	in := src.Bytes()
	off := 0
	var encoded []byte
	for {
		r, size, ok := it.Next()
		if !ok {
			break
		}
		if r == utf8.RuneError {
			// The iterators report undecodable input as RuneError; only an
			// encoded U+FFFD in the source itself is a real code point.
			unit := in[off : off+size]
			genuine := (src.Encoding() == UTF8 && size == 3) ||
				(src.Encoding() == UTF16LE && unit[0] == 0xFD && unit[1] == 0xFF)
			if !genuine {
				return false
			}
		}
		off += size
		switch dst.enc {
		case ASCII:
			if r > 0x7F {
				return false
			}
			encoded = append(encoded, byte(r))
		case UTF8:
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			encoded = append(encoded, buf[:n]...)
		case UTF16LE:
			if r > 0x10FFFF {
				return false
			}
			if r <= 0xFFFF {
				encoded = append(encoded, byte(r), byte(r>>8))
			} else {
				r -= 0x10000
				hi := 0xD800 + (r >> 10)
				lo := 0xDC00 + (r & 0x3FF)
				encoded = append(encoded, byte(hi), byte(hi>>8), byte(lo), byte(lo>>8))
			}
		}
	}
	return dst.Append(NewStringView(dst.enc, encoded))
}
