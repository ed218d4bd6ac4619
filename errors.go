// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package segcore

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fallible operations that need more than a bare
// bool to explain themselves (format strings, replacement passes, the
// allocator registry). Every other fallible operation in this package,
// including AppendEncoded, returns a plain bool per spec: allocation failure
// and bounded-capacity overflow are not program errors and do not warrant
// an error value.
var (
	// ErrUnbalancedPop is reported when Pop is called on an allocator stack
	// that does not have the popping guard at its top.
	ErrUnbalancedPop = errors.New("segcore: unbalanced allocator stack pop")

	// ErrInvalidSpecifier is returned by Builder.Format when a format
	// specifier is not recognized. Per spec, unknown specifiers fail the
	// whole call rather than being silently ignored.
	ErrInvalidSpecifier = errors.New("segcore: unknown format specifier")

	// ErrArgIndex is returned by Builder.Format when a positional argument
	// index is out of range.
	ErrArgIndex = errors.New("segcore: format argument index out of range")

	// ErrUnterminatedBrace is returned by Builder.Format for a format string
	// with an opening brace that is never closed.
	ErrUnterminatedBrace = errors.New("segcore: unterminated format placeholder")

	// ErrInvalidEncoding names the failure of source bytes that contain a
	// sequence that cannot be decoded in the declared source encoding.
	// AppendEncoded reports this condition by returning false; no function
	// in this package returns this value.
	ErrInvalidEncoding = errors.New("segcore: invalid encoded byte sequence")

	// ErrUnrepresentable names the failure of a code point that cannot be
	// represented in the destination encoding (e.g. non-ASCII code point
	// into ASCII). AppendEncoded reports this condition by returning false,
	// rather than substituting or truncating; no function in this package
	// returns this value.
	ErrUnrepresentable = errors.New("segcore: code point not representable in destination encoding")

	// ErrTooManyPasses is returned by Builder.AppendReplaceMultiple when the
	// replacement set does not converge within the bounded pass limit.
	ErrTooManyPasses = errors.New("segcore: replacement passes did not converge")

	// ErrBufferGrowth is returned by Builder.Format when the destination
	// GrowableBuffer cannot grow to hold the formatted result.
	ErrBufferGrowth = errors.New("segcore: destination buffer could not grow")
)

// EncodingError carries a byte offset at which transcoding failed, in
// addition to satisfying the plain sentinel-error check via
// errors.Is(err, ErrInvalidEncoding) / errors.Is(err, ErrUnrepresentable).
// AppendEncoded reports failure as a bool and does not produce one.
type EncodingError struct {
	Offset int
	cause  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("segcore: encoding error at byte offset %d: %v", e.Offset, e.cause)
}

func (e *EncodingError) Unwrap() error { return e.cause }

// FormatError carries the byte offset within the format string at which
// parsing failed.
type FormatError struct {
	Offset int
	cause  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("segcore: format error at offset %d: %v", e.Offset, e.cause)
}

func (e *FormatError) Unwrap() error { return e.cause }
