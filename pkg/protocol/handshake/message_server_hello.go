// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/dtlscodec/dtls/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

// random + session id length + cipher suite + compression method.
const serverHelloFixedLength = RandomLength + 1 + 2 + 1

// MessageServerHello is sent in response to a ClientHello
// message when it was able to find an acceptable set of algorithms.
// If it cannot find such a match, it will respond with a handshake
// failure alert.
//
// The body carries no protocol version; the record header does.
// Extensions holds any bytes after the compression method, kept opaque.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.1.3
type MessageServerHello struct {
	Random    Random
	SessionID []byte

	CipherSuiteID     *CipherSuiteID
	CompressionMethod *protocol.CompressionMethodID

	Extensions []byte
}

// Type returns the Handshake Type.
func (m MessageServerHello) Type() Type {
	return TypeServerHello
}

func (m MessageServerHello) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageServerHello) Marshal() ([]byte, error) {
	switch {
	case m.CipherSuiteID == nil:
		return nil, errCipherSuiteUnset
	case m.CompressionMethod == nil:
		return nil, errCompressionMethodUnset
	case len(m.SessionID) > maxSessionIDLength:
		return nil, errSessionIDTooLong
	}

	var b cryptobyte.Builder
	b.AddBytes(m.Random[:])
	addUint8Prefixed(&b, m.SessionID)
	b.AddUint16(uint16(*m.CipherSuiteID))
	b.AddUint8(uint8(*m.CompressionMethod))
	b.AddBytes(m.Extensions)

	return b.Bytes()
}

// Unmarshal populates the message from encoded data. On error the
// message is left unchanged.
func (m *MessageServerHello) Unmarshal(data []byte) error {
	if len(data) < serverHelloFixedLength {
		return errBufferTooSmall
	}

	s := cryptobyte.String(data)
	var random Random
	if !s.CopyBytes(random[:]) {
		return errBufferTooSmall
	}

	sessionID, err := readUint8Prefixed(&s, "session id")
	if err != nil {
		return err
	}

	var cipherSuiteID uint16
	var compressionMethod uint8
	if !s.ReadUint16(&cipherSuiteID) || !s.ReadUint8(&compressionMethod) {
		return errDeclaredLength("session id", len(sessionID), len(data)-RandomLength-1)
	}

	var extensions []byte
	if len(s) > 0 {
		extensions = append([]byte{}, s...)
	}

	id := CipherSuiteID(cipherSuiteID)
	method := protocol.CompressionMethodID(compressionMethod)
	*m = MessageServerHello{
		Random:            random,
		SessionID:         sessionID,
		CipherSuiteID:     &id,
		CompressionMethod: &method,
		Extensions:        extensions,
	}

	return nil
}
