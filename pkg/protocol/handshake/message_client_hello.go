// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/dtlscodec/dtls/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

const (
	maxSessionIDLength = 32
	maxCookieLength    = 255

	// version + random + session id length + cookie length +
	// cipher suites length + compression methods length.
	clientHelloFixedLength = protocol.VersionLength + RandomLength + 1 + 1 + 2 + 1
)

/*
MessageClientHello is for when a client first connects to a server it is
required to send the client hello as its first message.  The client can also send a
client hello in response to a hello request or on its own
initiative in order to renegotiate the security parameters in an
existing connection.

Extensions holds everything after the compression methods, including
the 2-byte length of the extensions block, and is written back verbatim.
It is nil when the hello carries no extensions.
*/
type MessageClientHello struct {
	Version protocol.Version
	Random  Random

	SessionID []byte
	Cookie    []byte

	CipherSuites       CipherSuites
	CompressionMethods []protocol.CompressionMethodID

	Extensions []byte
}

// Type returns the Handshake Type.
func (m MessageClientHello) Type() Type {
	return TypeClientHello
}

func (m MessageClientHello) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageClientHello) Marshal() ([]byte, error) {
	switch {
	case len(m.SessionID) > maxSessionIDLength:
		return nil, errSessionIDTooLong
	case len(m.Cookie) > maxCookieLength:
		return nil, errCookieTooLong
	case len(m.CipherSuites) > maxCipherSuites:
		return nil, errTooManyCipherSuites
	}

	compressionMethods, err := protocol.EncodeCompressionMethods(m.CompressionMethods)
	if err != nil {
		return nil, err
	}

	var b cryptobyte.Builder
	b.AddBytes(m.Version.Marshal())
	b.AddBytes(m.Random[:])
	addUint8Prefixed(&b, m.SessionID)
	addUint8Prefixed(&b, m.Cookie)
	addCipherSuites(&b, m.CipherSuites)
	b.AddBytes(compressionMethods)
	b.AddBytes(m.Extensions)

	return b.Bytes()
}

// Unmarshal populates the message from encoded data. On error the
// message is left unchanged.
func (m *MessageClientHello) Unmarshal(data []byte) error {
	if len(data) < clientHelloFixedLength {
		return errBufferTooSmall
	}

	s := cryptobyte.String(data)

	var rawVersion []byte
	if !s.ReadBytes(&rawVersion, protocol.VersionLength) {
		return errBufferTooSmall
	}
	var version protocol.Version
	if err := version.Unmarshal(rawVersion); err != nil {
		return err
	}
	var random Random
	if !s.CopyBytes(random[:]) {
		return errBufferTooSmall
	}

	sessionID, err := readUint8Prefixed(&s, "session id")
	if err != nil {
		return err
	}
	cookie, err := readUint8Prefixed(&s, "cookie")
	if err != nil {
		return err
	}
	cipherSuites, err := readCipherSuites(&s)
	if err != nil {
		return err
	}
	compressionMethods, err := protocol.DecodeCompressionMethods(s)
	if err != nil {
		return err
	}

	var extensions []byte
	if rest := s[1+len(compressionMethods):]; len(rest) > 0 {
		extensions = append([]byte{}, rest...)
	}

	*m = MessageClientHello{
		Version:            version,
		Random:             random,
		SessionID:          sessionID,
		Cookie:             cookie,
		CipherSuites:       cipherSuites,
		CompressionMethods: compressionMethods,
		Extensions:         extensions,
	}

	return nil
}

func addUint8Prefixed(b *cryptobyte.Builder, data []byte) {
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(data)
	})
}

// readUint8Prefixed returns a copy of a 1-byte length prefixed field.
func readUint8Prefixed(s *cryptobyte.String, field string) ([]byte, error) {
	var length uint8
	if !s.ReadUint8(&length) {
		return nil, errBufferTooSmall
	}

	var data []byte
	if !s.ReadBytes(&data, int(length)) {
		return nil, errDeclaredLength(field, int(length), len(*s))
	}

	return append([]byte{}, data...), nil
}
