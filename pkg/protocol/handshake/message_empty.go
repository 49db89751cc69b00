// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

// MessageHelloRequest is sent by the server to ask the client to begin
// a new negotiation. It has no body.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.1.1
type MessageHelloRequest struct{}

// Type returns the Handshake Type.
func (m MessageHelloRequest) Type() Type {
	return TypeHelloRequest
}

func (m MessageHelloRequest) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageHelloRequest) Marshal() ([]byte, error) {
	return []byte{}, nil
}

// Unmarshal populates the message from encoded data.
func (m *MessageHelloRequest) Unmarshal([]byte) error {
	return nil
}

// MessageServerHelloDone is sent by the server to indicate the end of
// the ServerHello and associated messages.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.5
type MessageServerHelloDone struct{}

// Type returns the Handshake Type.
func (m MessageServerHelloDone) Type() Type {
	return TypeServerHelloDone
}

func (m MessageServerHelloDone) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageServerHelloDone) Marshal() ([]byte, error) {
	return []byte{}, nil
}

// Unmarshal populates the message from encoded data.
func (m *MessageServerHelloDone) Unmarshal([]byte) error {
	return nil
}

// MessageFinished is sent immediately after a change cipher spec
// message to verify that the key exchange and authentication processes
// were successful. The verify data is not carried; decode accepts and
// drops any body.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.9
type MessageFinished struct{}

// Type returns the Handshake Type.
func (m MessageFinished) Type() Type {
	return TypeFinished
}

func (m MessageFinished) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageFinished) Marshal() ([]byte, error) {
	return []byte{}, nil
}

// Unmarshal populates the message from encoded data.
func (m *MessageFinished) Unmarshal([]byte) error {
	return nil
}
