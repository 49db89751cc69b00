// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"encoding/binary"
	"fmt"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/dtlscodec/dtls/pkg/protocol/alert"
	"github.com/dtlscodec/dtls/pkg/protocol/handshake"
)

const maxContentLength = 0xffff

// RecordLayer which handles all data transport.
// The record layer is assumed to sit directly on top of some
// reliable transport such as TCP. The record layer can carry four types of content:
//
// 1. Handshake messages, used for algorithm negotiation and key establishment.
// 2. ChangeCipherSpec messages—really part of the handshake but technically a separate kind of message.
// 3. Alert messages, used to signal that errors have occurred
// 4. Application layer data
//
// The DTLS record layer is extremely similar to that of TLS 1.1.  The
// only change is the inclusion of an explicit sequence number in the
// record.  This sequence number allows the recipient to correctly
// verify the TLS MAC.
//
// https://tools.ietf.org/html/rfc4347#section-4.1
type RecordLayer struct {
	Header  Header
	Content protocol.Content
}

// New builds a record around content, filling in its type and length.
func New(version protocol.Version, epoch uint16, sequenceNumber uint64, content protocol.Content) (*RecordLayer, error) {
	if content == nil {
		return nil, errContentUnset
	}
	if sequenceNumber > MaxSequenceNumber {
		return nil, errSequenceNumberOverflow
	}

	raw, err := content.Marshal()
	if err != nil {
		return nil, err
	}
	if len(raw) > maxContentLength {
		return nil, errContentTooLarge
	}

	return &RecordLayer{
		Header: Header{
			ContentType:    content.ContentType(),
			ContentLen:     uint16(len(raw)), //nolint:gosec // checked above
			Version:        version,
			Epoch:          epoch,
			SequenceNumber: sequenceNumber,
		},
		Content: content,
	}, nil
}

// Marshal encodes the RecordLayer to binary
func (r *RecordLayer) Marshal() ([]byte, error) {
	if r.Content == nil {
		return nil, errContentUnset
	}
	if r.Header.ContentType != r.Content.ContentType() {
		return nil, fmt.Errorf("%w: header %s, content %s", errContentTypeMismatch, r.Header.ContentType, r.Content.ContentType())
	}

	contentRaw, err := r.Content.Marshal()
	if err != nil {
		return nil, err
	}
	if len(contentRaw) != int(r.Header.ContentLen) {
		return nil, fmt.Errorf("%w: header declares %d bytes, content is %d", protocol.ErrLengthMismatch, r.Header.ContentLen, len(contentRaw))
	}

	headerRaw, err := r.Header.Marshal()
	if err != nil {
		return nil, err
	}

	return append(headerRaw, contentRaw...), nil
}

// Unmarshal populates the RecordLayer from binary. Bytes past the
// declared content length are ignored.
func (r *RecordLayer) Unmarshal(data []byte) error {
	if err := r.Header.Unmarshal(data); err != nil {
		return err
	}

	end := HeaderSize + int(r.Header.ContentLen)
	if len(data) < end {
		return fmt.Errorf("%w: record declares %d bytes, %d remain", errBufferTooSmall, r.Header.ContentLen, len(data)-HeaderSize)
	}

	content, err := unmarshalContent(r.Header, data[HeaderSize:end])
	if err != nil {
		return err
	}
	r.Content = content

	return nil
}

// unmarshalContent picks the content by type. Anything under an epoch
// other than zero is still protected, so only its framing is known.
func unmarshalContent(h Header, payload []byte) (protocol.Content, error) {
	var content protocol.Content

	switch {
	case h.ContentType == protocol.ContentTypeHandshake && h.Epoch == 0:
		return handshake.UnmarshalContent(payload)
	case h.ContentType == protocol.ContentTypeHandshake:
		content = &handshake.Encrypted{}
	case h.ContentType == protocol.ContentTypeChangeCipherSpec:
		content = &protocol.ChangeCipherSpec{}
	case h.ContentType == protocol.ContentTypeAlert && h.Epoch == 0:
		content = &alert.Alert{}
	case h.ContentType == protocol.ContentTypeApplicationData:
		content = &protocol.ApplicationData{}
	default:
		content = &protocol.Opaque{Type: h.ContentType}
	}

	if err := content.Unmarshal(payload); err != nil {
		return nil, err
	}

	return content, nil
}

// UnpackDatagram extracts all RecordLayer messages from a single datagram.
// Note that as with TLS, multiple handshake messages may be placed in
// the same DTLS record, provided that there is room and that they are
// part of the same flight.  Thus, there are two acceptable ways to pack
// two DTLS messages into the same datagram: in the same record or in
// separate records.
// https://tools.ietf.org/html/rfc6347#section-4.2.3
//
// On error the records split before the failure are returned with it.
func UnpackDatagram(buf []byte) ([][]byte, error) {
	out := [][]byte{}

	for offset := 0; len(buf) != offset; {
		if len(buf)-offset < HeaderSize {
			return out, fmt.Errorf("%w: %d bytes at offset %d", errTrailingBytes, len(buf)-offset, offset)
		}

		pktLen := HeaderSize + int(binary.BigEndian.Uint16(buf[offset+HeaderSize-2:]))
		if offset+pktLen > len(buf) {
			return out, fmt.Errorf("%w: record at offset %d declares %d bytes, %d remain",
				errBufferTooSmall, offset, pktLen-HeaderSize, len(buf)-offset-HeaderSize)
		}

		out = append(out, buf[offset:offset+pktLen])
		offset += pktLen
	}

	return out, nil
}
