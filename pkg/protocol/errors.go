// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"errors"
	"fmt"
)

// Error kinds reported by the codecs. Codec errors wrap exactly one of
// these, use errors.Is to classify them.
var (
	// ErrTruncatedBuffer is returned when fewer bytes are available than a
	// fixed or declared-length field requires.
	ErrTruncatedBuffer = errors.New("buffer is too small")
	// ErrInconsistentLength is returned when a declared length does not fit
	// the remaining buffer, or disagrees with another length field.
	ErrInconsistentLength = errors.New("declared length is inconsistent with the data")
	// ErrLengthMismatch is returned when a length field disagrees with the
	// length of the content it describes at assembly time.
	ErrLengthMismatch = errors.New("data length and declared length do not match")
	// ErrValueOutOfRange is returned when a value can not be represented in
	// the width of its field.
	ErrValueOutOfRange = errors.New("value does not fit in field width")
	// ErrInconsistentFragment is returned when a handshake fragment conflicts
	// with fragments already received for the same message sequence.
	ErrInconsistentFragment = errors.New("fragment conflicts with previously received fragments")
	// ErrTrailingGarbage is returned when a datagram ends with bytes too
	// short to form a record.
	ErrTrailingGarbage = errors.New("trailing bytes too short to form a record")
	// ErrMissingField is returned when a required field is unset at marshal time.
	ErrMissingField = errors.New("required field unset, unable to marshal")
)

var (
	errInvalidCipherSpec         = fmt.Errorf("%w: cipher spec invalid", ErrInconsistentLength)
	errCompressionMethodsEmpty   = fmt.Errorf("%w: at least one compression method is required", ErrMissingField)
	errTooManyCompressionMethods = fmt.Errorf("%w: more than 255 compression methods", ErrValueOutOfRange)
)
