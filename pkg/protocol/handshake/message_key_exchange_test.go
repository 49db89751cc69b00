// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"bytes"
	"testing"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandshakeMessageKeyExchange(t *testing.T) {
	secret := bytes.Repeat([]byte{0x5a}, EncryptedPreMasterSecretLength)

	for _, m := range []Message{
		&MessageClientKeyExchange{EncryptedPreMasterSecret: secret},
		&MessageServerKeyExchange{EncryptedPreMasterSecret: secret},
	} {
		m := m
		t.Run(m.Type().String(), func(t *testing.T) {
			raw, err := m.Marshal()
			require.NoError(t, err)
			assert.Equal(t, secret, raw)

			parsed := newMessage(m.Type())
			require.NoError(t, parsed.Unmarshal(append(raw, 0x00, 0x01)))
			assert.Equal(t, m, parsed)
		})
	}
}

func TestHandshakeMessageKeyExchangeErrors(t *testing.T) {
	for name, test := range map[string]struct {
		secret []byte
		err    error
	}{
		"Unset":    {nil, protocol.ErrMissingField},
		"Empty":    {[]byte{}, protocol.ErrLengthMismatch},
		"TooShort": {make([]byte, EncryptedPreMasterSecretLength-1), protocol.ErrLengthMismatch},
		"TooLong":  {make([]byte, EncryptedPreMasterSecretLength+1), protocol.ErrLengthMismatch},
	} {
		test := test
		t.Run(name, func(t *testing.T) {
			_, err := (&MessageClientKeyExchange{EncryptedPreMasterSecret: test.secret}).Marshal()
			assert.ErrorIs(t, err, test.err)

			_, err = (&MessageServerKeyExchange{EncryptedPreMasterSecret: test.secret}).Marshal()
			assert.ErrorIs(t, err, test.err)
		})
	}

	c := &MessageClientKeyExchange{}
	assert.ErrorIs(t, c.Unmarshal(make([]byte, EncryptedPreMasterSecretLength-1)), protocol.ErrTruncatedBuffer)
}
