// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"encoding/binary"
	"fmt"

	"github.com/dtlscodec/dtls/internal/util"
	"github.com/dtlscodec/dtls/pkg/protocol"
)

// HeaderLength msg_len for Handshake messages assumes an extra
// 12 bytes for sequence, fragment and version information vs TLS.
const HeaderLength = 12

const maxUint24 = 0xffffff

// Header is the static first 12 bytes of each RecordLayer
// of type Handshake. These fields allow us to support message loss, reordering, and
// message fragmentation,
//
// https://tools.ietf.org/html/rfc6347#section-4.2.2
type Header struct {
	Type            Type
	Length          uint32 // uint24 on the wire
	MessageSequence uint16
	FragmentOffset  uint32 // uint24 on the wire
	FragmentLength  uint32 // uint24 on the wire
}

// IsFragmented reports whether the header describes only part of a message.
func (h *Header) IsFragmented() bool {
	return h.FragmentOffset != 0 || h.FragmentLength != h.Length
}

// Validate checks the 24-bit fields fit and the fragment lies within the message.
func (h *Header) Validate() error {
	for _, v := range []uint32{h.Length, h.FragmentOffset, h.FragmentLength} {
		if v > maxUint24 {
			return fmt.Errorf("%w: %d exceeds a 24-bit field", protocol.ErrValueOutOfRange, v)
		}
	}
	if uint64(h.FragmentOffset)+uint64(h.FragmentLength) > uint64(h.Length) {
		return fmt.Errorf("%w: fragment [%d, %d) outside message of %d bytes",
			protocol.ErrInconsistentLength, h.FragmentOffset, h.FragmentOffset+h.FragmentLength, h.Length)
	}

	return nil
}

// Marshal encodes the Header.
func (h *Header) Marshal() ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	out := make([]byte, HeaderLength)

	out[0] = byte(h.Type)
	util.PutBigEndianUint24(out[1:], h.Length)
	binary.BigEndian.PutUint16(out[4:], h.MessageSequence)
	util.PutBigEndianUint24(out[6:], h.FragmentOffset)
	util.PutBigEndianUint24(out[9:], h.FragmentLength)

	return out, nil
}

// Unmarshal populates the header from encoded data. The fragment range
// must lie within the declared message length.
func (h *Header) Unmarshal(data []byte) error {
	if len(data) < HeaderLength {
		return errBufferTooSmall
	}

	h.Type = Type(data[0])
	h.Length = util.BigEndianUint24(data[1:])
	h.MessageSequence = binary.BigEndian.Uint16(data[4:])
	h.FragmentOffset = util.BigEndianUint24(data[6:])
	h.FragmentLength = util.BigEndianUint24(data[9:])

	return h.Validate()
}
