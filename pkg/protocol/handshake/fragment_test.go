// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalHandshake(t *testing.T, seq uint16, msg Message) []byte {
	t.Helper()

	h, err := NewHandshake(seq, msg)
	require.NoError(t, err)
	raw, err := h.Marshal()
	require.NoError(t, err)

	return raw
}

func TestUnmarshalContentSingleMessage(t *testing.T) {
	raw := marshalHandshake(t, 0, testClientHello())

	content, err := UnmarshalContent(raw)
	require.NoError(t, err)
	require.IsType(t, &Handshake{}, content)

	h := content.(*Handshake) //nolint:forcetypeassert
	assert.Equal(t, testClientHello(), h.Message)
	assert.Equal(t, protocol.ContentTypeHandshake, content.ContentType())
}

func TestUnmarshalContentMultipleMessages(t *testing.T) {
	raw := marshalHandshake(t, 1, &MessageHelloVerifyRequest{Version: protocol.Version1_0, Cookie: []byte{0x01}})
	raw = append(raw, marshalHandshake(t, 2, &MessageServerHelloDone{})...)

	content, err := UnmarshalContent(raw)
	require.NoError(t, err)
	require.IsType(t, &Fragments{}, content)

	frags := *content.(*Fragments) //nolint:forcetypeassert
	require.Len(t, frags, 2)
	assert.Equal(t, TypeHelloVerifyRequest, frags[0].Header.Type)
	assert.Equal(t, TypeServerHelloDone, frags[1].Header.Type)

	h, err := frags[1].Handshake()
	require.NoError(t, err)
	assert.Equal(t, &MessageServerHelloDone{}, h.Message)

	out, err := content.Marshal()
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestUnmarshalContentPartialMessage(t *testing.T) {
	h, err := NewHandshake(0, &MessageUnknown{HandshakeType: TypeCertificateRequest, Data: make([]byte, 30)})
	require.NoError(t, err)
	fragments, err := h.Fragment(20)
	require.NoError(t, err)

	raw, err := fragments[1].Marshal()
	require.NoError(t, err)

	content, err := UnmarshalContent(raw)
	require.NoError(t, err)
	assert.Equal(t, &Fragments{fragments[1]}, content)

	_, err = fragments[1].Handshake()
	assert.ErrorIs(t, err, errHandshakeFragmented)
}

func TestFragmentsUnmarshalErrors(t *testing.T) {
	raw := marshalHandshake(t, 0, &MessageFinished{})

	for name, test := range map[string]struct {
		raw []byte
		err error
	}{
		"Empty":           {[]byte{}, protocol.ErrTruncatedBuffer},
		"TrailingGarbage": {append(append([]byte{}, raw...), 0x01, 0x02, 0x03), protocol.ErrTruncatedBuffer},
		"DataPastEnd":     {[]byte{0x0b, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x01}, protocol.ErrInconsistentLength},
	} {
		test := test
		t.Run(name, func(t *testing.T) {
			var f Fragments
			assert.ErrorIs(t, f.Unmarshal(test.raw), test.err)

			_, err := UnmarshalContent(test.raw)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestFragmentMarshalLengthMismatch(t *testing.T) {
	f := &Fragment{
		Header: Header{Type: TypeCertificate, Length: 10, FragmentLength: 4},
		Data:   []byte{0x01, 0x02},
	}
	_, err := f.Marshal()
	assert.ErrorIs(t, err, protocol.ErrLengthMismatch)

	_, err = (&Fragment{Header: Header{Type: TypeFinished}, Data: []byte{0x01}}).Handshake()
	assert.ErrorIs(t, err, protocol.ErrLengthMismatch)
}
