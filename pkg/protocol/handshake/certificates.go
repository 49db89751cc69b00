// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"golang.org/x/crypto/cryptobyte"
)

const certificateLengthFieldSize = 3

// Certificates is a chain of DER encoded certificates, sender's first.
// On the wire it is a 3-byte total length followed by each certificate
// with its own 3-byte length.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.2
type Certificates [][]byte

// NewCertificates copies each certificate into a new chain.
func NewCertificates(certs ...[]byte) Certificates {
	out := make(Certificates, 0, len(certs))
	for _, c := range certs {
		out = append(out, append([]byte{}, c...))
	}

	return out
}

// Marshal encodes the chain.
func (c Certificates) Marshal() ([]byte, error) {
	total := 0
	for _, cert := range c {
		if len(cert) > maxUint24 {
			return nil, errCertificateTooLong
		}
		total += certificateLengthFieldSize + len(cert)
	}
	if total > maxUint24 {
		return nil, errCertificateTooLong
	}

	var b cryptobyte.Builder
	b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, cert := range c {
			b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddBytes(cert)
			})
		}
	})

	return b.Bytes()
}

// Unmarshal decodes a chain. Bytes after the chain are ignored.
func (c *Certificates) Unmarshal(data []byte) error {
	s := cryptobyte.String(data)

	var total uint32
	if !s.ReadUint24(&total) {
		return errBufferTooSmall
	}

	var raw []byte
	if !s.ReadBytes(&raw, int(total)) {
		return errDeclaredLength("certificate list", int(total), len(s))
	}
	list := cryptobyte.String(raw)

	out := Certificates{}
	for !list.Empty() {
		var length uint32
		if !list.ReadUint24(&length) {
			return errDeclaredLength("certificate length", certificateLengthFieldSize, len(list))
		}

		var cert []byte
		if !list.ReadBytes(&cert, int(length)) {
			return errDeclaredLength("certificate", int(length), len(list))
		}
		out = append(out, append([]byte{}, cert...))
	}
	*c = out

	return nil
}
