// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// Sequence is an unbounded, heap-backed, contiguous, ordered container —
// the plain "vector" of the container family. Its zero value
// is an empty, ready-to-use sequence.
type Sequence[T any] struct {
	_ noCopy

	seg segment[T]
}

var _ Container[int] = (*Sequence[int])(nil)

// NewSequence returns an empty Sequence with at least capacity preallocated.
func NewSequence[T any](capacity int) *Sequence[T] {
	s := &Sequence[T]{}
	if capacity > 0 {
		s.seg.reserve(capacity)
	}
	return s
}

func (s *Sequence[T]) Len() int      { return s.seg.size() }
func (s *Sequence[T]) Cap() int      { return s.seg.capacity() }
func (s *Sequence[T]) IsEmpty() bool { return s.seg.isEmpty() }
func (s *Sequence[T]) Data() []T     { return s.seg.data() }
func (s *Sequence[T]) At(i int) T    { return s.seg.data()[i] }
func (s *Sequence[T]) Set(i int, v T) { s.seg.data()[i] = v }

// AsSpan returns a Span view over the sequence's current elements, for
// handing off to external collaborators (hashing, file I/O, process
// arguments) that only need a pointer+length view and shouldn't take on a
// dependency on the container type itself. The span aliases the sequence's
// storage and is invalidated by any subsequent mutation.
func (s *Sequence[T]) AsSpan() Span[T] { return MakeSpan(s.seg.data()) }

// Reserve ensures capacity for at least n elements without changing Len.
func (s *Sequence[T]) Reserve(n int) bool { return s.seg.reserve(n) }

// Resize sets Len to n, zeroing newly exposed elements when growing.
func (s *Sequence[T]) Resize(n int) bool { return s.seg.resize(n) }

// ResizeUninitialized sets Len to n without initializing newly exposed
// elements when growing — the caller must write them before reading.
func (s *Sequence[T]) ResizeUninitialized(n int) bool { return s.seg.resizeUninitialized(n) }

func (s *Sequence[T]) Clear() { s.seg.clear() }

// ShrinkToFit releases unused trailing capacity.
func (s *Sequence[T]) ShrinkToFit() bool { return s.seg.shrinkToFit() }

func (s *Sequence[T]) PushBack(v T) bool  { return s.seg.pushBack(v) }
func (s *Sequence[T]) PopBack() (T, bool) { return s.seg.popBack() }
func (s *Sequence[T]) PushFront(v T) bool { return s.seg.pushFront(v) }
func (s *Sequence[T]) PopFront() (T, bool) { return s.seg.popFront() }

// Insert inserts v at index i, shifting subsequent elements right.
func (s *Sequence[T]) Insert(i int, v T) bool { return s.seg.insert(i, v) }

// InsertMove inserts the elements of src at index i, moving them out of
// src (src's elements are reset to the zero value on success).
func (s *Sequence[T]) InsertMove(i int, src []T) bool { return s.seg.insertMove(i, src) }

// Append appends src after the current last element, copying it.
func (s *Sequence[T]) Append(src ...T) bool { return s.seg.appendSlice(src) }

// InsertSlice inserts a copy of src's elements at index i, leaving src
// itself unmodified.
func (s *Sequence[T]) InsertSlice(i int, src []T) bool { return s.seg.insertSlice(i, src) }

// AppendMove appends the elements of src, moving them out of src (src's
// elements are reset to the zero value on success).
func (s *Sequence[T]) AppendMove(src []T) bool { return s.seg.insertMove(s.seg.size(), src) }

// RemoveAt removes the element at index i, shifting subsequent elements
// left.
func (s *Sequence[T]) RemoveAt(i int) bool { return s.seg.removeAt(i) }

// RemoveAll removes every element for which remove returns true, compacting
// survivors in place. Returns the number removed.
func (s *Sequence[T]) RemoveAll(remove func(T) bool) int { return s.seg.removeAll(remove) }

// Release returns the sequence's backing storage to the current Global
// allocator (Current(Global)) and empties it. The sequence is safe to reuse afterward.
func (s *Sequence[T]) Release() { s.seg.release() }
