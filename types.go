// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

// PageSize is the memory page size used to round VirtualMemory reservations
// and commits. On Linux it is detected once at init from the OS
// (vmem_linux.go); elsewhere it stays 4096. Overridable for tests.
var PageSize uintptr = 4096

// SetPageSize updates the package-level page size used for alignment and
// virtual memory rounding.
func SetPageSize(size int) {
	PageSize = uintptr(size)
}

// Span is a pointer+length view over a contiguous run of T, used at the
// boundaries external collaborators (hashing, file I/O, process arguments)
// consume without needing the owning container type.
type Span[T any] struct {
	data []T
}

// MakeSpan wraps an existing slice as a Span without copying.
func MakeSpan[T any](data []T) Span[T] { return Span[T]{data: data} }

// Data returns the underlying slice view.
func (s Span[T]) Data() []T { return s.data }

// Len returns the number of elements in the span.
func (s Span[T]) Len() int { return len(s.data) }

// noCopy is a sentinel embedded in types that must not be copied after
// first use (Arena, the allocator registry, VirtualMemory). go vet's
// copylocks check flags any accidental copy once this is embedded.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
