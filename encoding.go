// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// Encoding names the byte-level representation a StringView or String
// carries. Operations that need to interpret code points —
// iteration, transcoding — dispatch on this value rather than assuming
// UTF-8 throughout, since the strings layer also has to represent text
// read from formats that are natively ASCII or UTF-16.
type Encoding int

const (
	ASCII Encoding = iota
	UTF8
	UTF16LE
)

func (e Encoding) String() string {
	switch e {
	case ASCII:
		return "ASCII"
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	default:
		return "unknown"
	}
}

// unitSize returns the size in bytes of one code unit for encodings with a
// fixed-width unit (UTF-16LE); ASCII and UTF-8 are variable-width at the
// rune level (UTF-8) or fixed 1-byte at the unit level (ASCII), so this is
// only meaningful for bounds-checking UTF-16LE buffers.
func (e Encoding) unitSize() int {
	if e == UTF16LE {
		return 2
	}
	return 1
}
