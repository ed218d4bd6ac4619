// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import "unsafe"

// segment is the shared heap-storage engine behind Sequence, and behind the
// heap fallback of SmallSequence once its inline capacity overflows. It
// allocates through the top of the process-wide Global stack
// (Current(Global), registry.go) at the moment it needs memory, not at
// construction, so a segment built under one pushed Global allocator and
// grown under another follows the stack. Scope stacks are not consulted.
//
// A zero-value segment is an empty, unallocated sequence ready to use.
type segment[T any] struct {
	ptr unsafe.Pointer
	len int
	cap int
}

// data returns the live elements as a slice. Reslicing the result up to
// s.cap (e.g. data()[:n]) is valid, since unsafe.Slice fixes the result's
// cap to the length passed here, which re-slicing preserves.
func (s *segment[T]) data() []T {
	if s.cap == 0 {
		return nil
	}
	full := unsafe.Slice((*T)(s.ptr), s.cap)
	return full[:s.len]
}

func (s *segment[T]) size() int     { return s.len }
func (s *segment[T]) capacity() int { return s.cap }
func (s *segment[T]) isEmpty() bool { return s.len == 0 }

func sizeOfT[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

func alignOfT[T any]() int {
	var z T
	return int(unsafe.Alignof(z))
}

// reserve ensures capacity for at least n elements without changing len.
func (s *segment[T]) reserve(n int) bool {
	if n <= s.cap {
		return true
	}
	return s.grow(n)
}

func (s *segment[T]) grow(want int) bool {
	newCap := s.cap * 2
	if newCap < want {
		newCap = want
	}
	if newCap < 4 {
		newCap = 4
	}
	elem := sizeOfT[T]()
	align := alignOfT[T]()
	alloc := Current(Global)
	np, ok := alloc.Allocate(newCap*elem, align)
	if !ok {
		return false
	}
	if s.len > 0 {
		copy(unsafe.Slice((*T)(np), s.len), s.data())
	}
	if s.ptr != nil {
		alloc.Release(s.ptr, s.cap*elem)
	}
	s.ptr, s.cap = np, newCap
	return true
}

// resizeUninitialized sets size to n, growing if needed. Newly exposed
// elements (when growing) hold whatever bytes the allocator returned —
// callers needing zeroed elements should use resize instead.
func (s *segment[T]) resizeUninitialized(n int) bool {
	if n < 0 {
		return false
	}
	if n > s.cap && !s.grow(n) {
		return false
	}
	s.len = n
	return true
}

// resize sets size to n, zeroing any newly exposed elements.
func (s *segment[T]) resize(n int) bool {
	old := s.len
	if !s.resizeUninitialized(n) {
		return false
	}
	if n > old {
		var zero T
		dst := s.data()[old:n]
		for i := range dst {
			dst[i] = zero
		}
	}
	return true
}

func (s *segment[T]) clear() {
	var zero T
	for i := range s.data() {
		s.data()[i] = zero
	}
	s.len = 0
}

// shrinkToFit releases unused trailing capacity by reallocating to exactly
// len elements. A no-op (reports true) when already tight or empty.
func (s *segment[T]) shrinkToFit() bool {
	if s.len == s.cap {
		return true
	}
	elem := sizeOfT[T]()
	align := alignOfT[T]()
	alloc := Current(Global)
	if s.len == 0 {
		if s.ptr != nil {
			alloc.Release(s.ptr, s.cap*elem)
		}
		s.ptr, s.cap = nil, 0
		return true
	}
	np, ok := alloc.Allocate(s.len*elem, align)
	if !ok {
		return false
	}
	copy(unsafe.Slice((*T)(np), s.len), s.data())
	alloc.Release(s.ptr, s.cap*elem)
	s.ptr, s.cap = np, s.len
	return true
}

func (s *segment[T]) pushBack(v T) bool {
	if s.len == s.cap && !s.grow(s.len+1) {
		return false
	}
	s.data()[:s.len+1][s.len] = v
	s.len++
	return true
}

func (s *segment[T]) popBack() (T, bool) {
	var zero T
	if s.len == 0 {
		return zero, false
	}
	s.len--
	v := s.data()[:s.len+1][s.len]
	s.data()[:s.len+1][s.len] = zero
	return v, true
}

func (s *segment[T]) pushFront(v T) bool {
	return s.insert(0, v)
}

func (s *segment[T]) popFront() (T, bool) {
	var zero T
	if s.len == 0 {
		return zero, false
	}
	v := s.data()[0]
	s.removeAt(0)
	return v, true
}

func (s *segment[T]) insert(i int, v T) bool {
	if i < 0 || i > s.len {
		return false
	}
	if s.len == s.cap && !s.grow(s.len+1) {
		return false
	}
	d := s.data()[:s.len+1]
	copy(d[i+1:], d[i:s.len])
	d[i] = v
	s.len++
	return true
}

// insertMove inserts the elements of src at index i, moving them out of src
// (src's elements are reset to the zero value on success; its length is
// unchanged) — the move-semantics counterpart
// to insertSlice's copy, for callers transferring ownership of elements
// rather than borrowing them.
func (s *segment[T]) insertMove(i int, src []T) bool {
	if i < 0 || i > s.len {
		return false
	}
	n := len(src)
	if n == 0 {
		return true
	}
	if s.len+n > s.cap && !s.grow(s.len+n) {
		return false
	}
	d := s.data()[:s.len+n]
	copy(d[i+n:], d[i:s.len])
	copy(d[i:i+n], src)
	s.len += n
	var zero T
	for i := range src {
		src[i] = zero
	}
	return true
}

// appendSlice appends src after the current last element, copying it.
func (s *segment[T]) appendSlice(src []T) bool {
	return s.insertSlice(s.len, src)
}

// insertSlice inserts a copy of src's elements at index i, leaving src
// itself unmodified — unlike insertMove, safe to call with a slice the
// caller still owns.
func (s *segment[T]) insertSlice(i int, src []T) bool {
	if i < 0 || i > s.len {
		return false
	}
	n := len(src)
	if n == 0 {
		return true
	}
	if s.len+n > s.cap && !s.grow(s.len+n) {
		return false
	}
	d := s.data()[:s.len+n]
	copy(d[i+n:], d[i:s.len])
	copy(d[i:i+n], src)
	s.len += n
	return true
}

func (s *segment[T]) removeAt(i int) bool {
	if i < 0 || i >= s.len {
		return false
	}
	d := s.data()
	var zero T
	copy(d[i:s.len-1], d[i+1:s.len])
	d[s.len-1] = zero
	s.len--
	return true
}

// removeAll removes every element for which remove returns true, compacting
// the survivors in place. Returns the number removed.
func (s *segment[T]) removeAll(remove func(T) bool) int {
	d := s.data()
	w := 0
	for r := 0; r < s.len; r++ {
		if !remove(d[r]) {
			d[w] = d[r]
			w++
		}
	}
	removed := s.len - w
	var zero T
	for i := w; i < s.len; i++ {
		d[i] = zero
	}
	s.len = w
	return removed
}

// release returns the segment's backing storage to the current Global
// allocator and resets it to empty. Containers call this from their Close/Release operation.
func (s *segment[T]) release() {
	if s.ptr == nil {
		return
	}
	Current(Global).Release(s.ptr, s.cap*sizeOfT[T]())
	s.ptr, s.len, s.cap = nil, 0, 0
}
