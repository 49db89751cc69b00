// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dtls

import (
	"math"
	"testing"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/dtlscodec/dtls/pkg/protocol/handshake"
	"github.com/dtlscodec/dtls/pkg/protocol/recordlayer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unpackRecords(t *testing.T, datagram []byte) []*recordlayer.RecordLayer {
	t.Helper()

	p := &recordlayer.Packet{}
	require.NoError(t, p.Unmarshal(datagram))

	return p.Records
}

// packOne packs contents and expects them to fit in one datagram.
func packOne(t *testing.T, sender *Sender, contents ...protocol.Content) []byte {
	t.Helper()

	datagrams, err := sender.Pack(contents...)
	require.NoError(t, err)
	require.Len(t, datagrams, 1)

	return datagrams[0]
}

// packHandshakesOne packs msgs and expects them to fit in one datagram.
func packHandshakesOne(t *testing.T, sender *Sender, msgs ...handshake.Message) []byte {
	t.Helper()

	datagrams, err := sender.PackHandshakes(msgs...)
	require.NoError(t, err)
	require.Len(t, datagrams, 1)

	return datagrams[0]
}

func TestSenderSequenceNumbers(t *testing.T) {
	sender, err := NewSender(protocol.Version1_2)
	require.NoError(t, err)

	records := unpackRecords(t, packOne(t, sender, &protocol.ChangeCipherSpec{}, &protocol.ChangeCipherSpec{}))
	require.Len(t, records, 2)
	assert.Equal(t, uint64(0), records[0].Header.SequenceNumber)
	assert.Equal(t, uint64(1), records[1].Header.SequenceNumber)
	assert.Equal(t, protocol.Version1_2, records[1].Header.Version)

	require.NoError(t, sender.IncrementEpoch())
	assert.Equal(t, uint16(1), sender.Epoch())

	records = unpackRecords(t, packOne(t, sender, &protocol.ApplicationData{Data: []byte("ping")}))
	require.Len(t, records, 1)
	assert.Equal(t, uint16(1), records[0].Header.Epoch)
	assert.Equal(t, uint64(0), records[0].Header.SequenceNumber)
	assert.Equal(t, &protocol.ApplicationData{Data: []byte("ping")}, records[0].Content)
}

func TestSenderPackHandshakes(t *testing.T) {
	sender, err := NewSender(protocol.Version1_0, WithMaxFragmentLength(16))
	require.NoError(t, err)

	certificate := &handshake.MessageCertificate{Certificates: handshake.NewCertificates(testBody(30))}
	records := unpackRecords(t, packHandshakesOne(t, sender, &handshake.MessageServerHelloDone{}, certificate))
	// 36 byte certificate body in fragments of 16, 16 and 4
	require.Len(t, records, 4)

	require.IsType(t, &handshake.Handshake{}, records[0].Content)
	assert.Equal(t, uint16(0), records[0].Content.(*handshake.Handshake).Header.MessageSequence) //nolint:forcetypeassert

	for i, record := range records[1:] {
		assert.Equal(t, uint64(i+1), record.Header.SequenceNumber) //nolint:gosec
		require.IsType(t, &handshake.Fragments{}, record.Content)

		frags := *record.Content.(*handshake.Fragments) //nolint:forcetypeassert
		require.Len(t, frags, 1)
		assert.Equal(t, uint16(1), frags[0].Header.MessageSequence)
		assert.Equal(t, uint32(36), frags[0].Header.Length)
		assert.Equal(t, uint32(i*16), frags[0].Header.FragmentOffset) //nolint:gosec
	}

	records = unpackRecords(t, packHandshakesOne(t, sender, &handshake.MessageFinished{}))
	require.Len(t, records, 1)
	assert.Equal(t, uint16(2), records[0].Content.(*handshake.Handshake).Header.MessageSequence) //nolint:forcetypeassert
}

func TestSenderDatagramsFitMTU(t *testing.T) {
	sender, err := NewSender(protocol.Version1_2)
	require.NoError(t, err)

	// 4006 byte body: three full 1175 byte fragments and one of 481
	certificate := &handshake.MessageCertificate{Certificates: handshake.NewCertificates(testBody(4000))}
	datagrams, err := sender.PackHandshakes(certificate)
	require.NoError(t, err)
	require.Len(t, datagrams, 4)

	for i, datagram := range datagrams {
		assert.LessOrEqual(t, len(datagram), defaultMTU)

		records := unpackRecords(t, datagram)
		require.Len(t, records, 1)
		assert.Equal(t, uint64(i), records[0].Header.SequenceNumber) //nolint:gosec
	}
	assert.Len(t, datagrams[0], defaultMTU)
	assert.Len(t, datagrams[3], recordlayer.HeaderSize+handshake.HeaderLength+481)
}

func TestSenderWithMTU(t *testing.T) {
	sender, err := NewSender(protocol.Version1_2, WithMTU(100))
	require.NoError(t, err)

	// 14 byte records, seven to a datagram
	var contents []protocol.Content
	for i := 0; i < 10; i++ {
		contents = append(contents, &protocol.ChangeCipherSpec{})
	}
	datagrams, err := sender.Pack(contents...)
	require.NoError(t, err)
	require.Len(t, datagrams, 2)
	assert.Len(t, datagrams[0], 98)
	assert.Len(t, unpackRecords(t, datagrams[0]), 7)
	assert.Len(t, unpackRecords(t, datagrams[1]), 3)

	// a record larger than the MTU travels alone
	datagrams, err = sender.Pack(
		&protocol.ApplicationData{Data: make([]byte, 150)},
		&protocol.ChangeCipherSpec{},
	)
	require.NoError(t, err)
	require.Len(t, datagrams, 2)
	assert.Len(t, datagrams[0], recordlayer.HeaderSize+150)
	assert.Len(t, datagrams[1], 14)

	// handshake fragments follow the MTU unless set explicitly
	datagrams, err = sender.PackHandshakes(&handshake.MessageCertificate{Certificates: handshake.NewCertificates(testBody(200))})
	require.NoError(t, err)
	for _, datagram := range datagrams {
		assert.LessOrEqual(t, len(datagram), 100)
	}

	datagrams, err = sender.Pack()
	require.NoError(t, err)
	assert.Empty(t, datagrams)
}

func TestSenderCommitsOnlyOnSuccess(t *testing.T) {
	sender, err := NewSender(protocol.Version1_2)
	require.NoError(t, err)

	_, err = sender.PackHandshakes(&handshake.MessageServerHelloDone{}, &handshake.MessageClientKeyExchange{})
	assert.ErrorIs(t, err, protocol.ErrMissingField)

	_, err = sender.Pack(&protocol.ChangeCipherSpec{}, nil)
	assert.ErrorIs(t, err, protocol.ErrMissingField)

	records := unpackRecords(t, packHandshakesOne(t, sender, &handshake.MessageServerHelloDone{}))
	require.Len(t, records, 1)
	assert.Equal(t, uint64(0), records[0].Header.SequenceNumber)
	assert.Equal(t, uint16(0), records[0].Content.(*handshake.Handshake).Header.MessageSequence) //nolint:forcetypeassert
}

func TestSenderEpochOverflow(t *testing.T) {
	sender, err := NewSender(protocol.Version1_2)
	require.NoError(t, err)

	for i := 0; i < math.MaxUint16; i++ {
		require.NoError(t, sender.IncrementEpoch())
	}
	assert.Equal(t, uint16(math.MaxUint16), sender.Epoch())

	assert.ErrorIs(t, sender.IncrementEpoch(), protocol.ErrValueOutOfRange)
	assert.Equal(t, uint16(math.MaxUint16), sender.Epoch())
}

func TestSenderErrors(t *testing.T) {
	_, err := NewSender(protocol.Version1_2, WithMaxFragmentLength(0))
	assert.ErrorIs(t, err, errInvalidMaxFragmentLength)

	_, err = NewSender(protocol.Version1_2, WithMTU(0))
	assert.ErrorIs(t, err, errInvalidMTU)

	sender, err := NewSender(protocol.Version1_2)
	require.NoError(t, err)

	_, err = sender.PackHandshakes(&handshake.MessageClientKeyExchange{})
	assert.ErrorIs(t, err, protocol.ErrMissingField)

	_, err = sender.Pack(nil)
	assert.ErrorIs(t, err, protocol.ErrMissingField)
}
