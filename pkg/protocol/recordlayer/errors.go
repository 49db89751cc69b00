// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package recordlayer implements the TLS Record Layer https://tools.ietf.org/html/rfc5246#section-6
package recordlayer

import (
	"errors"
	"fmt"

	"github.com/dtlscodec/dtls/pkg/protocol"
)

var (
	errBufferTooSmall         = protocol.ErrTruncatedBuffer
	errSequenceNumberOverflow = fmt.Errorf("%w: sequence number overflow", protocol.ErrValueOutOfRange)
	errContentTooLarge        = fmt.Errorf("%w: record content exceeds 65535 bytes", protocol.ErrValueOutOfRange)
	errContentUnset           = fmt.Errorf("%w: record content unset", protocol.ErrMissingField)
	errContentTypeMismatch    = errors.New("record header content type does not match content")
	errTrailingBytes          = fmt.Errorf("%w: datagram ends inside a record header", protocol.ErrTrailingGarbage)
)

// RecordError reports the record of a packet that failed, by its
// position in the datagram.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}
