// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	rawHeader := []byte{
		0x01, 0x00, 0x00, 0x64, 0x00, 0x05, 0x00, 0x00, 0x32, 0x00, 0x00, 0x32,
	}
	parsedHeader := Header{
		Type:            TypeClientHello,
		Length:          100,
		MessageSequence: 5,
		FragmentOffset:  50,
		FragmentLength:  50,
	}

	var h Header
	require.NoError(t, h.Unmarshal(rawHeader))
	assert.Equal(t, parsedHeader, h)
	assert.True(t, h.IsFragmented())

	raw, err := h.Marshal()
	require.NoError(t, err)
	assert.Equal(t, rawHeader, raw)
}

func TestHeaderUnmarshalTruncated(t *testing.T) {
	var h Header
	assert.ErrorIs(t, h.Unmarshal(make([]byte, HeaderLength-1)), protocol.ErrTruncatedBuffer)
}

func TestHeaderValidate(t *testing.T) {
	for name, test := range map[string]struct {
		header Header
		err    error
	}{
		"Whole": {
			header: Header{Length: 10, FragmentLength: 10},
		},
		"Empty": {
			header: Header{Type: TypeFinished},
		},
		"LastFragment": {
			header: Header{Length: 10, FragmentOffset: 6, FragmentLength: 4},
		},
		"PastEnd": {
			header: Header{Length: 10, FragmentOffset: 6, FragmentLength: 5},
			err:    protocol.ErrInconsistentLength,
		},
		"OffsetPastEnd": {
			header: Header{Length: 10, FragmentOffset: 11},
			err:    protocol.ErrInconsistentLength,
		},
		"LengthTooLarge": {
			header: Header{Length: 0x1000000, FragmentLength: 0x1000000},
			err:    protocol.ErrValueOutOfRange,
		},
	} {
		test := test
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, test.header.Validate(), test.err)

			_, err := test.header.Marshal()
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestHeaderUnmarshalRangeOutsideMessage(t *testing.T) {
	// offset 8 + length 4 > total 10
	raw := []byte{0x01, 0x00, 0x00, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x04}

	var h Header
	assert.ErrorIs(t, h.Unmarshal(raw), protocol.ErrInconsistentLength)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "ClientHello", TypeClientHello.String())
	assert.Equal(t, "Finished", TypeFinished.String())
	assert.Equal(t, "unknown(99)", Type(99).String())
}
