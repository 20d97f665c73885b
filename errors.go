// SPDX-License-Identifier: EPL-2.0

package monowav

import "errors"

var (
	// ErrNilBuffer is returned by EncodeBuffer for a nil input buffer.
	ErrNilBuffer = errors.New("nil audio buffer")

	// ErrNoFormat is returned by EncodeBuffer when the input buffer
	// carries no format, leaving the sample rate unknown.
	ErrNoFormat = errors.New("audio buffer has no format")
)
