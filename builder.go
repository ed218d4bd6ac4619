// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import (
	"fmt"
	"strconv"
)

// Builder writes into any GrowableBuffer: a scratch ByteBuffer for
// throwaway formatting, or a *String to build owned text in place. It
// holds no buffer of its own.
type Builder struct {
	_ noCopy

	buf GrowableBuffer
}

// NewBuilder returns a Builder writing into buf.
func NewBuilder(buf GrowableBuffer) *Builder { return &Builder{buf: buf} }

func (b *Builder) grow(extra int) []byte {
	old := b.buf.Size()
	if !b.buf.ResizeUninitialized(old + extra) {
		return nil
	}
	return b.buf.Data()[old : old+extra]
}

// Append writes s's raw bytes. Reports false (buffer unchanged) on
// allocation failure.
func (b *Builder) Append(s []byte) bool {
	dst := b.grow(len(s))
	if dst == nil {
		return false
	}
	copy(dst, s)
	return true
}

// AppendString writes s's raw UTF-8 bytes.
func (b *Builder) AppendString(s string) bool { return b.Append([]byte(s)) }

// AppendReplaceAll appends s with every occurrence of old replaced by new.
func (b *Builder) AppendReplaceAll(s []byte, old, new []byte) bool {
	if len(old) == 0 {
		return b.Append(s)
	}
	var out []byte
	for len(s) > 0 {
		i := indexOf(s, old)
		if i < 0 {
			out = append(out, s...)
			break
		}
		out = append(out, s[:i]...)
		out = append(out, new...)
		s = s[i+len(old):]
	}
	return b.Append(out)
}

// AppendReplaceMultiple applies every (old, new) pair in repls to s,
// repeating the full set of passes until none of them match anywhere in
// the result — so a replacement whose new text happens to reintroduce
// another pair's old text is caught on the next pass — but gives up with
// ErrTooManyPasses after len(repls)+1 passes rather than looping forever
// on a pair set that can never reach a fixed point (e.g. old="a", new="aa").
func (b *Builder) AppendReplaceMultiple(s []byte, repls [][2][]byte) error {
	cur := append([]byte(nil), s...)
	maxPasses := len(repls) + 1
	for pass := 0; ; pass++ {
		changed := false
		for _, pair := range repls {
			old, new := pair[0], pair[1]
			if len(old) == 0 || indexOf(cur, old) < 0 {
				continue
			}
			changed = true
			var out []byte
			rest := cur
			for len(rest) > 0 {
				i := indexOf(rest, old)
				if i < 0 {
					out = append(out, rest...)
					break
				}
				out = append(out, rest[:i]...)
				out = append(out, new...)
				rest = rest[i+len(old):]
			}
			cur = out
		}
		if !changed {
			break
		}
		if pass+1 >= maxPasses {
			return ErrTooManyPasses
		}
	}
	if !b.Append(cur) {
		return ErrBufferGrowth
	}
	return nil
}

func indexOf(s, sub []byte) int {
	n := len(sub)
	if n == 0 || n > len(s) {
		if n == 0 {
			return 0
		}
		return -1
	}
	for i := 0; i+n <= len(s); i++ {
		if string(s[i:i+n]) == string(sub) {
			return i
		}
	}
	return -1
}

// HexCase selects the digit case AppendHex encodes with.
type HexCase int

const (
	HexLower HexCase = iota
	HexUpper
)

const (
	hexDigitsLower = "0123456789abcdef"
	hexDigitsUpper = "0123456789ABCDEF"
)

// AppendHex appends s's bytes as hex, two characters per byte, in the given
// case.
func (b *Builder) AppendHex(s []byte, c HexCase) bool {
	digits := hexDigitsLower
	if c == HexUpper {
		digits = hexDigitsUpper
	}
	dst := b.grow(len(s) * 2)
	if dst == nil {
		return false
	}
	for i, v := range s {
		dst[i*2] = digits[v>>4]
		dst[i*2+1] = digits[v&0xF]
	}
	return true
}

// Format appends a template with positional placeholders — "{}" for the
// next unconsumed argument, "{N}" for argument N — substituting each with
// fmt.Sprint(args[N]). An out-of-range index, a malformed "{...}" (e.g. an
// unterminated brace or a non-numeric specifier), reports a FormatError
// rather than emitting a partial result.
func (b *Builder) Format(template string, args ...any) error {
	var out []byte
	next := 0
	i := 0
	for i < len(template) {
		c := template[i]
		if c != '{' {
			out = append(out, c)
			i++
			continue
		}
		end := -1
		for j := i + 1; j < len(template); j++ {
			if template[j] == '}' {
				end = j
				break
			}
		}
		if end < 0 {
			return &FormatError{Offset: i, cause: ErrUnterminatedBrace}
		}
		spec := template[i+1 : end]
		idx := next
		if spec != "" {
			n, err := strconv.Atoi(spec)
			if err != nil {
				return &FormatError{Offset: i, cause: ErrInvalidSpecifier}
			}
			idx = n
		} else {
			next++
		}
		if idx < 0 || idx >= len(args) {
			return &FormatError{Offset: i, cause: ErrArgIndex}
		}
		out = append(out, []byte(fmt.Sprint(args[idx]))...)
		i = end + 1
	}
	if !b.Append(out) {
		return &FormatError{Offset: len(template), cause: ErrBufferGrowth}
	}
	return nil
}
