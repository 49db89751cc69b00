// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/dtlscodec/dtls/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

// MessageHelloVerifyRequest is as follows:
//
//	struct {
//	  ProtocolVersion server_version;
//	  opaque cookie<0..2^8-1>;
//	} HelloVerifyRequest;
//
//	The HelloVerifyRequest message type is hello_verify_request(3).
//
//	When the client sends its ClientHello message to the server, the server
//	MAY respond with a HelloVerifyRequest message.  This message contains
//	a stateless cookie generated using the technique of [PHOTURIS].  The
//	client MUST retransmit the ClientHello with the cookie added.
//
// https://tools.ietf.org/html/rfc6347#section-4.2.1
type MessageHelloVerifyRequest struct {
	Version protocol.Version
	Cookie  []byte
}

// Type returns the Handshake Type.
func (m MessageHelloVerifyRequest) Type() Type {
	return TypeHelloVerifyRequest
}

func (m MessageHelloVerifyRequest) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageHelloVerifyRequest) Marshal() ([]byte, error) {
	if len(m.Cookie) > maxCookieLength {
		return nil, errCookieTooLong
	}

	var b cryptobyte.Builder
	b.AddBytes(m.Version.Marshal())
	addUint8Prefixed(&b, m.Cookie)

	return b.Bytes()
}

// Unmarshal populates the message from encoded data.
func (m *MessageHelloVerifyRequest) Unmarshal(data []byte) error {
	if len(data) < protocol.VersionLength+1 {
		return errBufferTooSmall
	}
	if err := m.Version.Unmarshal(data); err != nil {
		return err
	}

	s := cryptobyte.String(data[protocol.VersionLength:])
	cookie, err := readUint8Prefixed(&s, "cookie")
	if err != nil {
		return err
	}
	m.Cookie = cookie

	return nil
}
