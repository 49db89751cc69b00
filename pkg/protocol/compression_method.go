// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import "fmt"

// CompressionMethodID is the ID for a CompressionMethod.
type CompressionMethodID byte

// CompressionMethodID enums. Only null is negotiated in practice.
//
// https://www.iana.org/assignments/comp-meth-ids/comp-meth-ids.xhtml
const (
	CompressionMethodNull    CompressionMethodID = 0
	CompressionMethodDeflate CompressionMethodID = 1
	CompressionMethodLZS     CompressionMethodID = 64
)

// IsKnown reports whether the id is a registered compression method.
func (c CompressionMethodID) IsKnown() bool {
	switch c {
	case CompressionMethodNull, CompressionMethodDeflate, CompressionMethodLZS:
		return true
	default:
		return false
	}
}

func (c CompressionMethodID) String() string {
	switch c {
	case CompressionMethodNull:
		return "null"
	case CompressionMethodDeflate:
		return "DEFLATE"
	case CompressionMethodLZS:
		return "LZS"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// DecodeCompressionMethods decodes a 1-byte length prefixed list of
// compression methods. Unknown ids are kept.
func DecodeCompressionMethods(buf []byte) ([]CompressionMethodID, error) {
	if len(buf) < 1 {
		return nil, ErrTruncatedBuffer
	}
	count := int(buf[0])
	if count == 0 {
		return nil, fmt.Errorf("%w: empty compression method list", ErrInconsistentLength)
	}
	if len(buf) < 1+count {
		return nil, fmt.Errorf("%w: %d compression methods declared, %d bytes remain", ErrInconsistentLength, count, len(buf)-1)
	}

	out := make([]CompressionMethodID, 0, count)
	for _, b := range buf[1 : 1+count] {
		out = append(out, CompressionMethodID(b))
	}

	return out, nil
}

// EncodeCompressionMethods encodes a list of compression methods with its
// 1-byte length prefix.
func EncodeCompressionMethods(c []CompressionMethodID) ([]byte, error) {
	switch {
	case len(c) == 0:
		return nil, errCompressionMethodsEmpty
	case len(c) > 255:
		return nil, errTooManyCompressionMethods
	}

	out := make([]byte, 0, 1+len(c))
	out = append(out, byte(len(c)))
	for _, id := range c {
		out = append(out, byte(id))
	}

	return out, nil
}
