// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import "unicode/utf8"

// RuneIterator walks an encoded byte sequence one code point at a time
// without decoding the whole string up front. Next returns
// (0, 0, false) once exhausted.
type RuneIterator interface {
	// Next returns the next rune, the number of bytes it occupied in the
	// source encoding, and true — or (0, 0, false) at end of input.
	Next() (r rune, size int, ok bool)
	// Prev moves one code point backward and returns the rune it decoded,
	// its size in bytes, and true — or (0, 0, false) at the start of input.
	Prev() (r rune, size int, ok bool)
	// Decode returns the rune at the current position without consuming it.
	// Returns utf8.RuneError at end of input.
	Decode() rune
	// AdvanceUntil advances forward until match(current rune) is true,
	// leaving the matching rune unconsumed, and reports whether a match was
	// found before the input was exhausted.
	AdvanceUntil(match func(rune) bool) bool
	// AdvanceIf consumes the current rune and returns true if match(it)
	// holds; otherwise leaves the position unchanged and returns false.
	AdvanceIf(match func(rune) bool) bool
	// ReverseAdvanceIf consumes the rune immediately before the current
	// position and returns true if match(it) holds; otherwise leaves the
	// position unchanged and returns false.
	ReverseAdvanceIf(match func(rune) bool) bool
	// SliceFromStartUntil returns a StringView over the bytes from the
	// start of the source up to the given byte offset.
	SliceFromStartUntil(end int) StringView
	// ByteDistance returns this iterator's current byte offset minus
	// other's. other must walk the same underlying bytes.
	ByteDistance(other RuneIterator) int
}

// bytePositioner exposes an iterator's current byte offset for
// ByteDistance, without widening the public RuneIterator interface with a
// getter callers have no reason to use directly.
type bytePositioner interface {
	bytePos() int
}

func byteDistance(pos int, other RuneIterator) int {
	if o, ok := other.(bytePositioner); ok {
		return pos - o.bytePos()
	}
	return 0
}

// ASCIIIterator walks a byte sequence one byte at a time, each byte its own
// rune. Bytes with the high bit set are not valid ASCII; Next returns them
// as utf8.RuneError with size 1 rather than silently masking the bit.
type ASCIIIterator struct {
	enc  Encoding
	data []byte
	pos  int
}

func (it *ASCIIIterator) decodeAt(pos int) (rune, int, bool) {
	if pos < 0 || pos >= len(it.data) {
		return 0, 0, false
	}
	b := it.data[pos]
	if b >= 0x80 {
		return utf8.RuneError, 1, true
	}
	return rune(b), 1, true
}

func (it *ASCIIIterator) bytePos() int { return it.pos }

func (it *ASCIIIterator) Next() (rune, int, bool) {
	r, size, ok := it.decodeAt(it.pos)
	if !ok {
		return 0, 0, false
	}
	it.pos += size
	return r, size, true
}

func (it *ASCIIIterator) Prev() (rune, int, bool) {
	if it.pos == 0 {
		return 0, 0, false
	}
	r, size, ok := it.decodeAt(it.pos - 1)
	if !ok {
		return 0, 0, false
	}
	it.pos -= size
	return r, size, true
}

func (it *ASCIIIterator) Decode() rune {
	r, _, ok := it.decodeAt(it.pos)
	if !ok {
		return utf8.RuneError
	}
	return r
}

func (it *ASCIIIterator) AdvanceUntil(match func(rune) bool) bool {
	for {
		r, _, ok := it.decodeAt(it.pos)
		if !ok {
			return false
		}
		if match(r) {
			return true
		}
		it.pos++
	}
}

func (it *ASCIIIterator) AdvanceIf(match func(rune) bool) bool {
	r, size, ok := it.decodeAt(it.pos)
	if !ok || !match(r) {
		return false
	}
	it.pos += size
	return true
}

func (it *ASCIIIterator) ReverseAdvanceIf(match func(rune) bool) bool {
	if it.pos == 0 {
		return false
	}
	r, size, ok := it.decodeAt(it.pos - 1)
	if !ok || !match(r) {
		return false
	}
	it.pos -= size
	return true
}

func (it *ASCIIIterator) SliceFromStartUntil(end int) StringView {
	return NewStringView(it.enc, it.data[:end])
}

func (it *ASCIIIterator) ByteDistance(other RuneIterator) int {
	return byteDistance(it.pos, other)
}

// UTF8Iterator walks a UTF-8 byte sequence one rune at a time using the
// standard library decoder.
type UTF8Iterator struct {
	data []byte
	pos  int
}

func (it *UTF8Iterator) bytePos() int { return it.pos }

func (it *UTF8Iterator) Next() (rune, int, bool) {
	if it.pos >= len(it.data) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRune(it.data[it.pos:])
	it.pos += size
	return r, size, true
}

func (it *UTF8Iterator) Prev() (rune, int, bool) {
	if it.pos == 0 {
		return 0, 0, false
	}
	r, size := utf8.DecodeLastRune(it.data[:it.pos])
	it.pos -= size
	return r, size, true
}

func (it *UTF8Iterator) Decode() rune {
	if it.pos >= len(it.data) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(it.data[it.pos:])
	return r
}

func (it *UTF8Iterator) AdvanceUntil(match func(rune) bool) bool {
	for it.pos < len(it.data) {
		r, _ := utf8.DecodeRune(it.data[it.pos:])
		if match(r) {
			return true
		}
		_, size := utf8.DecodeRune(it.data[it.pos:])
		it.pos += size
	}
	return false
}

func (it *UTF8Iterator) AdvanceIf(match func(rune) bool) bool {
	if it.pos >= len(it.data) {
		return false
	}
	r, size := utf8.DecodeRune(it.data[it.pos:])
	if !match(r) {
		return false
	}
	it.pos += size
	return true
}

func (it *UTF8Iterator) ReverseAdvanceIf(match func(rune) bool) bool {
	if it.pos == 0 {
		return false
	}
	r, size := utf8.DecodeLastRune(it.data[:it.pos])
	if !match(r) {
		return false
	}
	it.pos -= size
	return true
}

func (it *UTF8Iterator) SliceFromStartUntil(end int) StringView {
	return NewStringView(UTF8, it.data[:end])
}

func (it *UTF8Iterator) ByteDistance(other RuneIterator) int {
	return byteDistance(it.pos, other)
}

// UTF16Iterator walks a little-endian UTF-16 byte sequence one rune at a
// time, combining surrogate pairs. An unpaired or truncated surrogate
// yields utf8.RuneError with the size of the code unit consumed.
type UTF16Iterator struct {
	data []byte
	pos  int
}

func (it *UTF16Iterator) bytePos() int { return it.pos }

func (it *UTF16Iterator) unit(at int) (uint16, bool) {
	if at < 0 || at+2 > len(it.data) {
		return 0, false
	}
	return uint16(it.data[at]) | uint16(it.data[at+1])<<8, true
}

// decodeForwardAt decodes the rune starting at byte offset pos.
func (it *UTF16Iterator) decodeForwardAt(pos int) (rune, int, bool) {
	u, ok := it.unit(pos)
	if !ok {
		return 0, 0, false
	}
	if u < 0xD800 || u > 0xDFFF {
		return rune(u), 2, true
	}
	if u >= 0xDC00 {
		return utf8.RuneError, 2, true
	}
	lo, ok := it.unit(pos + 2)
	if !ok || lo < 0xDC00 || lo > 0xDFFF {
		return utf8.RuneError, 2, true
	}
	r := ((rune(u) - 0xD800) << 10) | (rune(lo) - 0xDC00) + 0x10000
	return r, 4, true
}

// decodeBackwardAt decodes the rune ending at byte offset pos.
func (it *UTF16Iterator) decodeBackwardAt(pos int) (rune, int, bool) {
	if pos < 2 {
		return 0, 0, false
	}
	u, ok := it.unit(pos - 2)
	if !ok {
		return 0, 0, false
	}
	if u < 0xDC00 || u > 0xDFFF {
		return rune(u), 2, true
	}
	// u is a low surrogate; check for a preceding high surrogate.
	hi, ok := it.unit(pos - 4)
	if !ok || hi < 0xD800 || hi > 0xDBFF {
		return utf8.RuneError, 2, true
	}
	r := ((rune(hi) - 0xD800) << 10) | (rune(u) - 0xDC00) + 0x10000
	return r, 4, true
}

func (it *UTF16Iterator) Next() (rune, int, bool) {
	r, size, ok := it.decodeForwardAt(it.pos)
	if !ok {
		return 0, 0, false
	}
	it.pos += size
	return r, size, true
}

func (it *UTF16Iterator) Prev() (rune, int, bool) {
	r, size, ok := it.decodeBackwardAt(it.pos)
	if !ok {
		return 0, 0, false
	}
	it.pos -= size
	return r, size, true
}

func (it *UTF16Iterator) Decode() rune {
	r, _, ok := it.decodeForwardAt(it.pos)
	if !ok {
		return utf8.RuneError
	}
	return r
}

func (it *UTF16Iterator) AdvanceUntil(match func(rune) bool) bool {
	for {
		r, size, ok := it.decodeForwardAt(it.pos)
		if !ok {
			return false
		}
		if match(r) {
			return true
		}
		it.pos += size
	}
}

func (it *UTF16Iterator) AdvanceIf(match func(rune) bool) bool {
	r, size, ok := it.decodeForwardAt(it.pos)
	if !ok || !match(r) {
		return false
	}
	it.pos += size
	return true
}

func (it *UTF16Iterator) ReverseAdvanceIf(match func(rune) bool) bool {
	r, size, ok := it.decodeBackwardAt(it.pos)
	if !ok || !match(r) {
		return false
	}
	it.pos -= size
	return true
}

func (it *UTF16Iterator) SliceFromStartUntil(end int) StringView {
	return NewStringView(UTF16LE, it.data[:end])
}

func (it *UTF16Iterator) ByteDistance(other RuneIterator) int {
	return byteDistance(it.pos, other)
}
