// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// GrowableBuffer is anything a Builder can write into: a resizable byte
// span plus a Finalize step that fixes its final form. Both ByteBuffer and
// *String satisfy it, so a Builder can target either a throwaway scratch
// buffer or an owning String without the builder caring which.
type GrowableBuffer interface {
	// Data returns the buffer's current content.
	Data() []byte
	// Size returns len(Data()).
	Size() int
	// ResizeUninitialized grows or shrinks the buffer to n bytes. Newly
	// exposed bytes on growth are unspecified; the caller must write them.
	// Reports false (buffer unchanged) on allocation failure.
	ResizeUninitialized(n int) bool
	// Finalize is called once building is complete, for buffers that need
	// to fix up trailing state (String appends its NUL terminator here).
	Finalize()
}

// ByteBuffer is a plain GrowableBuffer with no finalization step, backed by
// a Sequence[byte].
type ByteBuffer struct {
	seg Sequence[byte]
}

func (b *ByteBuffer) Data() []byte { return b.seg.Data() }
func (b *ByteBuffer) Size() int    { return b.seg.Len() }

func (b *ByteBuffer) ResizeUninitialized(n int) bool {
	return b.seg.ResizeUninitialized(n)
}

func (b *ByteBuffer) Finalize() {}

// Release returns the buffer's backing storage to its allocator.
func (b *ByteBuffer) Release() { b.seg.Release() }

// AsSpan returns a Span view over the buffer's current bytes, for handing
// off to an external collaborator that only needs a pointer+length view.
func (b *ByteBuffer) AsSpan() Span[byte] { return b.seg.AsSpan() }

func (s *String) Data() []byte { return s.Bytes() }
func (s *String) Size() int    { return s.Len() }

func (s *String) ResizeUninitialized(n int) bool {
	if !s.data.ResizeUninitialized(n + 1) {
		return false
	}
	s.data.Data()[n] = 0
	return true
}

// Finalize re-asserts the trailing NUL invariant; a no-op in practice since
// every mutator already maintains it, but required to satisfy
// GrowableBuffer for callers that build directly against *String.
func (s *String) Finalize() {
	if s.data.Len() == 0 || s.data.Data()[s.data.Len()-1] != 0 {
		s.data.PushBack(0)
	}
}

var (
	_ GrowableBuffer = (*ByteBuffer)(nil)
	_ GrowableBuffer = (*String)(nil)
)
