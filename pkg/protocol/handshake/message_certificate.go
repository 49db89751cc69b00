// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

// MessageCertificate is a DTLS Handshake Message
// it can contain either a Client or Server Certificate
//
// https://tools.ietf.org/html/rfc5246#section-7.4.2
type MessageCertificate struct {
	Certificates Certificates
}

// Type returns the Handshake Type.
func (m MessageCertificate) Type() Type {
	return TypeCertificate
}

func (m MessageCertificate) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageCertificate) Marshal() ([]byte, error) {
	return m.Certificates.Marshal()
}

// Unmarshal populates the message from encoded data.
func (m *MessageCertificate) Unmarshal(data []byte) error {
	return m.Certificates.Unmarshal(data)
}
