// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

// MessageUnknown carries the body of a handshake type without a codec,
// including types like CertificateRequest and CertificateVerify that
// are recognised by name only.
type MessageUnknown struct {
	HandshakeType Type
	Data          []byte
}

// Type returns the Handshake Type.
func (m MessageUnknown) Type() Type {
	return m.HandshakeType
}

func (m MessageUnknown) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageUnknown) Marshal() ([]byte, error) {
	return append([]byte{}, m.Data...), nil
}

// Unmarshal populates the message from encoded data.
func (m *MessageUnknown) Unmarshal(data []byte) error {
	m.Data = append([]byte{}, data...)

	return nil
}
