// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// SmallSequence stores up to A's capacity elements inline, with no
// allocation, and transparently spills to a heap segment (the same engine
// Sequence uses) the moment an insert would exceed that capacity. It is
// the small-buffer-optimized growable container: for collections that are
// almost always small but must not be bounded.
//
// A is one of the Inline4..Inline128 tiers (arrays.go) or a caller-defined
// type of the same shape; PA carries the pointer-method constraint Go
// generics require to call A's methods without an extra allocation.
type SmallSequence[T any, A any, PA interface {
	*A
	inlineArray[T]
}] struct {
	_ noCopy

	inline   A
	inlineN  int
	overflow segment[T]
	spilled  bool
}

var _ Container[int] = (*SmallSequence[int, Inline8[int], *Inline8[int]])(nil)

func (s *SmallSequence[T, A, PA]) inlineCap() int { return PA(&s.inline).Cap() }

func (s *SmallSequence[T, A, PA]) Len() int {
	if s.spilled {
		return s.overflow.size()
	}
	return s.inlineN
}

func (s *SmallSequence[T, A, PA]) Cap() int {
	if s.spilled {
		return s.overflow.capacity()
	}
	return s.inlineCap()
}

func (s *SmallSequence[T, A, PA]) IsEmpty() bool { return s.Len() == 0 }

func (s *SmallSequence[T, A, PA]) Data() []T {
	if s.spilled {
		return s.overflow.data()
	}
	return PA(&s.inline).storage()[:s.inlineN]
}

func (s *SmallSequence[T, A, PA]) At(i int) T     { return s.Data()[i] }
func (s *SmallSequence[T, A, PA]) Set(i int, v T) { s.Data()[i] = v }

// spill moves every inline element into a freshly grown heap segment, the
// switch small-buffer-optimized containers make once they outgrow inline
// capacity. ShrinkToFit can move a sequence back to inline storage once its
// length drops back within inline capacity.
func (s *SmallSequence[T, A, PA]) spill(extra int) bool {
	if !s.overflow.reserve(s.inlineN + extra) {
		return false
	}
	s.overflow.insertMove(0, PA(&s.inline).storage()[:s.inlineN])
	s.inlineN = 0
	s.spilled = true
	return true
}

func (s *SmallSequence[T, A, PA]) PushBack(v T) bool {
	if s.spilled {
		return s.overflow.pushBack(v)
	}
	if s.inlineN < s.inlineCap() {
		PA(&s.inline).storage()[s.inlineN] = v
		s.inlineN++
		return true
	}
	if !s.spill(1) {
		return false
	}
	return s.overflow.pushBack(v)
}

func (s *SmallSequence[T, A, PA]) PopBack() (T, bool) {
	if s.spilled {
		return s.overflow.popBack()
	}
	var zero T
	if s.inlineN == 0 {
		return zero, false
	}
	s.inlineN--
	d := PA(&s.inline).storage()
	v := d[s.inlineN]
	d[s.inlineN] = zero
	return v, true
}

// Insert inserts v at index i, spilling to the heap first if inline
// capacity is exhausted.
func (s *SmallSequence[T, A, PA]) Insert(i int, v T) bool {
	if s.spilled {
		return s.overflow.insert(i, v)
	}
	if i < 0 || i > s.inlineN {
		return false
	}
	if s.inlineN == s.inlineCap() {
		if !s.spill(1) {
			return false
		}
		return s.overflow.insert(i, v)
	}
	d := PA(&s.inline).storage()
	copy(d[i+1:s.inlineN+1], d[i:s.inlineN])
	d[i] = v
	s.inlineN++
	return true
}

func (s *SmallSequence[T, A, PA]) RemoveAt(i int) bool {
	if s.spilled {
		return s.overflow.removeAt(i)
	}
	if i < 0 || i >= s.inlineN {
		return false
	}
	d := PA(&s.inline).storage()
	var zero T
	copy(d[i:s.inlineN-1], d[i+1:s.inlineN])
	d[s.inlineN-1] = zero
	s.inlineN--
	return true
}

func (s *SmallSequence[T, A, PA]) Clear() {
	if s.spilled {
		s.overflow.clear()
		return
	}
	var zero T
	d := PA(&s.inline).storage()
	for i := 0; i < s.inlineN; i++ {
		d[i] = zero
	}
	s.inlineN = 0
}

func (s *SmallSequence[T, A, PA]) PushFront(v T) bool { return s.Insert(0, v) }

func (s *SmallSequence[T, A, PA]) PopFront() (T, bool) {
	if s.spilled {
		return s.overflow.popFront()
	}
	var zero T
	if s.inlineN == 0 {
		return zero, false
	}
	d := PA(&s.inline).storage()
	v := d[0]
	copy(d[0:s.inlineN-1], d[1:s.inlineN])
	d[s.inlineN-1] = zero
	s.inlineN--
	return v, true
}

// InsertMove inserts the elements of src at index i, moving them out of
// src (src's elements are reset to the zero value on success), spilling to the heap first if inline
// capacity is exhausted.
func (s *SmallSequence[T, A, PA]) InsertMove(i int, src []T) bool {
	if s.spilled {
		return s.overflow.insertMove(i, src)
	}
	if i < 0 || i > s.inlineN {
		return false
	}
	n := len(src)
	if n == 0 {
		return true
	}
	if s.inlineN+n > s.inlineCap() {
		if !s.spill(n) {
			return false
		}
		return s.overflow.insertMove(i, src)
	}
	d := PA(&s.inline).storage()
	copy(d[i+n:s.inlineN+n], d[i:s.inlineN])
	copy(d[i:i+n], src)
	s.inlineN += n
	var zero T
	for j := range src {
		src[j] = zero
	}
	return true
}

// Append appends src after the current last element, copying it, spilling
// to the heap first if inline capacity is exhausted.
func (s *SmallSequence[T, A, PA]) Append(src ...T) bool {
	if s.spilled {
		return s.overflow.appendSlice(src)
	}
	n := len(src)
	if n == 0 {
		return true
	}
	if s.inlineN+n > s.inlineCap() {
		if !s.spill(n) {
			return false
		}
		return s.overflow.appendSlice(src)
	}
	d := PA(&s.inline).storage()
	copy(d[s.inlineN:s.inlineN+n], src)
	s.inlineN += n
	return true
}

// AppendMove appends the elements of src, moving them out of src (src's
// elements are reset to the zero value on success).
func (s *SmallSequence[T, A, PA]) AppendMove(src []T) bool {
	return s.InsertMove(s.Len(), src)
}

// RemoveAll removes every element for which remove returns true, compacting
// survivors in place. Returns the number removed.
func (s *SmallSequence[T, A, PA]) RemoveAll(remove func(T) bool) int {
	if s.spilled {
		return s.overflow.removeAll(remove)
	}
	d := PA(&s.inline).storage()
	w := 0
	for r := 0; r < s.inlineN; r++ {
		if !remove(d[r]) {
			d[w] = d[r]
			w++
		}
	}
	removed := s.inlineN - w
	var zero T
	for i := w; i < s.inlineN; i++ {
		d[i] = zero
	}
	s.inlineN = w
	return removed
}

// Reserve ensures capacity for at least n elements without changing Len,
// spilling to the heap if n exceeds inline capacity.
func (s *SmallSequence[T, A, PA]) Reserve(n int) bool {
	if s.spilled {
		return s.overflow.reserve(n)
	}
	if n <= s.inlineCap() {
		return true
	}
	return s.spill(n - s.inlineN)
}

// ResizeUninitialized sets Len to n without initializing newly exposed
// elements when growing, spilling to the heap first if n exceeds inline
// capacity.
func (s *SmallSequence[T, A, PA]) ResizeUninitialized(n int) bool {
	if n < 0 {
		return false
	}
	if s.spilled {
		return s.overflow.resizeUninitialized(n)
	}
	if n <= s.inlineCap() {
		s.inlineN = n
		return true
	}
	if !s.spill(n - s.inlineN) {
		return false
	}
	return s.overflow.resizeUninitialized(n)
}

// Resize sets Len to n, zeroing newly exposed elements when growing.
func (s *SmallSequence[T, A, PA]) Resize(n int) bool {
	old := s.Len()
	if !s.ResizeUninitialized(n) {
		return false
	}
	if n > old {
		var zero T
		d := s.Data()[old:n]
		for i := range d {
			d[i] = zero
		}
	}
	return true
}

// ShrinkToFit releases unused heap capacity. If the sequence has spilled to
// the heap but its current length fits back within inline capacity, it
// moves the elements back into inline storage and releases the heap
// segment; otherwise it shrinks the heap segment in place. A no-op
// (reports true) if the sequence never spilled.
func (s *SmallSequence[T, A, PA]) ShrinkToFit() bool {
	if !s.spilled {
		return true
	}
	if s.overflow.size() > s.inlineCap() {
		return s.overflow.shrinkToFit()
	}
	n := s.overflow.size()
	copy(PA(&s.inline).storage()[:n], s.overflow.data())
	s.overflow.release()
	s.inlineN = n
	s.spilled = false
	return true
}

// Release returns any spilled heap storage to its allocator. A no-op if
// the sequence never spilled.
func (s *SmallSequence[T, A, PA]) Release() {
	if s.spilled {
		s.overflow.release()
	}
}
