// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package util contains small helpers used across the repo
package util

import (
	"fmt"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

const maxWidth = 8

var errInvalidWidth = fmt.Errorf("%w: field width must be between 1 and %d bytes", protocol.ErrValueOutOfRange, maxWidth)

// MaxUint returns the largest value representable in width bytes.
func MaxUint(width int) uint64 {
	if width >= maxWidth {
		return ^uint64(0)
	}

	return 1<<(8*uint(width)) - 1
}

// ReadUint reads a big endian unsigned integer of width bytes at offset.
func ReadUint(buf []byte, offset, width int) (uint64, error) {
	if width < 1 || width > maxWidth {
		return 0, errInvalidWidth
	}
	if offset < 0 || offset+width > len(buf) {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, have %d", protocol.ErrTruncatedBuffer, width, offset, len(buf))
	}

	var v uint64
	for _, b := range buf[offset : offset+width] {
		v = v<<8 | uint64(b)
	}

	return v, nil
}

// PutUint writes value into the first width bytes of dst in network byte order.
func PutUint(dst []byte, value uint64, width int) error {
	if width < 1 || width > maxWidth {
		return errInvalidWidth
	}
	if value > MaxUint(width) {
		return fmt.Errorf("%w: %d does not fit in %d bytes", protocol.ErrValueOutOfRange, value, width)
	}
	if len(dst) < width {
		return protocol.ErrTruncatedBuffer
	}

	for i := width - 1; i >= 0; i-- {
		dst[i] = byte(value)
		value >>= 8
	}

	return nil
}

// WriteUint encodes value as a width byte big endian integer.
func WriteUint(value uint64, width int) ([]byte, error) {
	if width < 1 || width > maxWidth {
		return nil, errInvalidWidth
	}
	out := make([]byte, width)
	if err := PutUint(out, value, width); err != nil {
		return nil, err
	}

	return out, nil
}

// BigEndianUint24 returns the value of a big endian uint24.
func BigEndianUint24(raw []byte) uint32 {
	v, err := ReadUint(raw, 0, 3)
	if err != nil {
		return 0
	}

	return uint32(v) //nolint:gosec // bounded by width
}

// PutBigEndianUint24 encodes a uint24 and places into out.
func PutBigEndianUint24(out []byte, in uint32) {
	_ = PutUint(out, uint64(in&0xffffff), 3)
}

// BigEndianUint48 returns the value of a big endian uint48.
func BigEndianUint48(raw []byte) uint64 {
	v, err := ReadUint(raw, 0, 6)
	if err != nil {
		return 0
	}

	return v
}

// PutBigEndianUint48 encodes a uint48 and places into out.
func PutBigEndianUint48(out []byte, in uint64) {
	_ = PutUint(out, in&0xffffffffffff, 6)
}

// AddUint48 appends a big-endian, 48-bit value to the cryptobyte.Builder.
func AddUint48(b *cryptobyte.Builder, v uint64) {
	b.AddBytes([]byte{byte(v >> 40), byte(v >> 32), byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

// SplitBytes splits bytes into chunks of at most splitLen.
func SplitBytes(bytes []byte, splitLen int) [][]byte {
	splitBytes := make([][]byte, 0)
	numBytes := len(bytes)
	for i := 0; i < numBytes; i += splitLen {
		j := i + splitLen
		if j > numBytes {
			j = numBytes
		}

		splitBytes = append(splitBytes, bytes[i:j])
	}

	return splitBytes
}
