// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import "github.com/dtlscodec/dtls/pkg/protocol"

// Encrypted is a handshake record payload protected under an epoch
// other than zero. It is carried opaquely until decrypted.
type Encrypted struct {
	Data []byte
}

// ContentType returns what kind of content this message is carrying.
func (e Encrypted) ContentType() protocol.ContentType {
	return protocol.ContentTypeHandshake
}

// Marshal encodes the payload.
func (e *Encrypted) Marshal() ([]byte, error) {
	return append([]byte{}, e.Data...), nil
}

// Unmarshal populates the payload from encoded data.
func (e *Encrypted) Unmarshal(data []byte) error {
	e.Data = append([]byte{}, data...)

	return nil
}
