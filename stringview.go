// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// StringView is a borrowed view over encoded text: an Encoding tag plus a
// byte slice, with no ownership of the bytes. A C++ view over the same
// idea would bit-pack the view's length together with its encoding tag
// into a single machine word to keep the view small; a Go slice header
// already carries its own length and the garbage collector already keeps
// the backing array alive for as long as any view into it exists, so that
// packing buys nothing here and StringView is a plain two-field struct
// instead. Deliberate simplification, not an oversight.
type StringView struct {
	enc   Encoding
	bytes []byte
}

// NewStringView wraps b as a view with the given encoding, without copying.
func NewStringView(enc Encoding, b []byte) StringView {
	return StringView{enc: enc, bytes: b}
}

// ViewString returns a UTF-8 view over a copy of a Go string's bytes.
func ViewString(s string) StringView {
	return StringView{enc: UTF8, bytes: []byte(s)}
}

func (v StringView) Encoding() Encoding { return v.enc }
func (v StringView) Bytes() []byte      { return v.bytes }
func (v StringView) Len() int           { return len(v.bytes) }
func (v StringView) IsEmpty() bool      { return len(v.bytes) == 0 }

// String copies the view's bytes out as a Go string. For UTF8/ASCII this is
// a direct copy; UTF16LE is not valid to interpret as a Go string and
// returns "" — use an AppendEncoded transcode to UTF-8 first.
func (v StringView) String() string {
	if v.enc == UTF16LE {
		return ""
	}
	return string(v.bytes)
}

// Slice returns the sub-view [start, end) in byte offsets. Panics on an
// out-of-range range, same as a slice expression.
func (v StringView) Slice(start, end int) StringView {
	return StringView{enc: v.enc, bytes: v.bytes[start:end]}
}

// Equal reports whether v and other denote the same text. ASCII is a
// byte-identical subset of UTF-8, so an ASCII view and a UTF-8 view compare
// equal whenever their bytes match; UTF-16LE uses a different code unit
// width and is never byte-compatible with the other two, so it only
// compares equal to another UTF-16LE view.
func (v StringView) Equal(other StringView) bool {
	if (v.enc == UTF16LE) != (other.enc == UTF16LE) {
		return false
	}
	if len(v.bytes) != len(other.bytes) {
		return false
	}
	for i := range v.bytes {
		if v.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

// Iterator returns a RuneIterator appropriate for v's encoding.
func (v StringView) Iterator() RuneIterator {
	switch v.enc {
	case ASCII:
		return &ASCIIIterator{enc: ASCII, data: v.bytes}
	case UTF16LE:
		return &UTF16Iterator{data: v.bytes}
	default:
		return &UTF8Iterator{data: v.bytes}
	}
}
