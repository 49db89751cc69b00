// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Consts for Random in Handshake.
const (
	RandomBytesLength = 28
	RandomLength      = RandomBytesLength + 4
)

// Random value that is used in ClientHello and ServerHello. It is
// carried opaquely; Populate writes the RFC layout of a 4-byte
// gmt_unix_time followed by 28 random bytes.
//
// https://tools.ietf.org/html/rfc4346#section-7.4.1.2
type Random [RandomLength]byte

// Populate fills the Random from rand, stamping now as gmt_unix_time.
// It may be called multiple times.
func (r *Random) Populate(rand io.Reader, now time.Time) error {
	if rand == nil {
		return errRandomSourceUnset
	}

	var fill [RandomBytesLength]byte
	if _, err := io.ReadFull(rand, fill[:]); err != nil {
		return fmt.Errorf("populate random: %w", err)
	}

	binary.BigEndian.PutUint32(r[0:], uint32(now.Unix())) //nolint:gosec // the field is 32 bits on the wire
	copy(r[4:], fill[:])

	return nil
}

// GMTUnixTime reads the timestamp stored in the first four bytes.
func (r Random) GMTUnixTime() time.Time {
	return time.Unix(int64(binary.BigEndian.Uint32(r[0:])), 0)
}
