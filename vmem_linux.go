// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package segcore

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func init() {
	PageSize = uintptr(unix.Getpagesize())
	newReservation = newLinuxReservation
}

// linuxReservation reserves address space with an anonymous PROT_NONE
// mapping and commits/decommits physical pages by toggling protection over
// a prefix of that mapping with mprotect. This avoids remapping on every
// commit/decommit, keeping the base address stable for the lifetime of the
// reservation, which is required for the self-relative pointers used by
// the memory dump workflow.
type linuxReservation struct {
	mem []byte
}

func newLinuxReservation(maxBytes int) (reservation, bool) {
	size := roundUpPage(maxBytes)
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, false
	}
	return &linuxReservation{mem: mem}, true
}

func (r *linuxReservation) addr() unsafe.Pointer {
	if len(r.mem) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(r.mem))
}

func (r *linuxReservation) commit(size int) bool {
	if size == 0 {
		return true
	}
	return unix.Mprotect(r.mem[:size], unix.PROT_READ|unix.PROT_WRITE) == nil
}

func (r *linuxReservation) decommit(size int) bool {
	tail := r.mem[size:]
	if len(tail) == 0 {
		return true
	}
	if err := unix.Mprotect(tail, unix.PROT_NONE); err != nil {
		return false
	}
	// MADV_DONTNEED actually releases the physical pages backing tail;
	// mprotect alone only forbids access.
	return unix.Madvise(tail, unix.MADV_DONTNEED) == nil
}

func (r *linuxReservation) release() {
	_ = unix.Munmap(r.mem)
	r.mem = nil
}
