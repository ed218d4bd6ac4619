// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package segcore

import "unsafe"

func init() {
	newReservation = newFallbackReservation
}

// fallbackReservation stands in for mmap/mprotect on platforms this module
// does not special-case (darwin, windows, ...). It allocates the full
// reservation up front as a Go slice — the Go runtime already demand-pages
// large allocations, so physical memory is not actually charged until
// touched — and tracks a logical committed/decommitted watermark so the
// observable Size/Capacity contract matches the Linux backend exactly. It
// does not reclaim physical pages on Decommit; that is a real limitation
// compared to mprotect+MADV_DONTNEED, documented in DESIGN.md.
type fallbackReservation struct {
	mem []byte
}

func newFallbackReservation(maxBytes int) (reservation, bool) {
	size := roundUpPage(maxBytes)
	return &fallbackReservation{mem: make([]byte, size)}, true
}

func (r *fallbackReservation) addr() unsafe.Pointer {
	if len(r.mem) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(r.mem))
}

func (r *fallbackReservation) commit(size int) bool   { return size <= len(r.mem) }
func (r *fallbackReservation) decommit(size int) bool { return size <= len(r.mem) }

func (r *fallbackReservation) release() {
	r.mem = nil
}
