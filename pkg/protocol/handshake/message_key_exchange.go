// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import "fmt"

// EncryptedPreMasterSecretLength is the size of an RSA encrypted
// premaster secret under a 1024-bit key.
const EncryptedPreMasterSecretLength = 128

// MessageServerKeyExchange supports ECDH and PSK in a full stack; here
// the body is the opaque 128-byte key exchange blob.
//
// https://tools.ietf.org/html/rfc4279#section-2
type MessageServerKeyExchange struct {
	EncryptedPreMasterSecret []byte
}

// Type returns the Handshake Type.
func (m MessageServerKeyExchange) Type() Type {
	return TypeServerKeyExchange
}

func (m MessageServerKeyExchange) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageServerKeyExchange) Marshal() ([]byte, error) {
	return marshalPreMasterSecret(m.EncryptedPreMasterSecret)
}

// Unmarshal populates the message from encoded data.
func (m *MessageServerKeyExchange) Unmarshal(data []byte) error {
	secret, err := unmarshalPreMasterSecret(data)
	if err != nil {
		return err
	}
	m.EncryptedPreMasterSecret = secret

	return nil
}

// MessageClientKeyExchange is a DTLS Handshake Message
// With this message, the premaster secret is set, either by direct
// transmission of the RSA-encrypted secret or by the transmission of
// Diffie-Hellman parameters that will allow each side to agree upon
// the same premaster secret.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.7
type MessageClientKeyExchange struct {
	EncryptedPreMasterSecret []byte
}

// Type returns the Handshake Type.
func (m MessageClientKeyExchange) Type() Type {
	return TypeClientKeyExchange
}

func (m MessageClientKeyExchange) isHandshakeMessage() {}

// Marshal encodes the Handshake.
func (m *MessageClientKeyExchange) Marshal() ([]byte, error) {
	return marshalPreMasterSecret(m.EncryptedPreMasterSecret)
}

// Unmarshal populates the message from encoded data.
func (m *MessageClientKeyExchange) Unmarshal(data []byte) error {
	secret, err := unmarshalPreMasterSecret(data)
	if err != nil {
		return err
	}
	m.EncryptedPreMasterSecret = secret

	return nil
}

func marshalPreMasterSecret(secret []byte) ([]byte, error) {
	switch {
	case secret == nil:
		return nil, errEncryptedPreMasterSecretSet
	case len(secret) != EncryptedPreMasterSecretLength:
		return nil, fmt.Errorf("%w, got %d", errEncryptedPreMasterSecretLen, len(secret))
	}

	return append([]byte{}, secret...), nil
}

func unmarshalPreMasterSecret(data []byte) ([]byte, error) {
	if len(data) < EncryptedPreMasterSecretLength {
		return nil, errBufferTooSmall
	}

	return append([]byte{}, data[:EncryptedPreMasterSecretLength]...), nil
}
