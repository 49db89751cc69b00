// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dtls

import (
	"errors"
	"sync"
	"testing"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/dtlscodec/dtls/pkg/protocol/alert"
	"github.com/dtlscodec/dtls/pkg/protocol/handshake"
	"github.com/dtlscodec/dtls/pkg/protocol/recordlayer"
	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerFlight() []handshake.Message {
	cipherSuiteID := handshake.TLS_RSA_WITH_AES_128_CBC_SHA
	compressionMethod := protocol.CompressionMethodNull

	return []handshake.Message{
		&handshake.MessageServerHello{
			SessionID:         []byte{0x01, 0x02, 0x03, 0x04},
			CipherSuiteID:     &cipherSuiteID,
			CompressionMethod: &compressionMethod,
		},
		&handshake.MessageCertificate{Certificates: handshake.NewCertificates(testBody(200), testBody(50))},
		&handshake.MessageServerHelloDone{},
	}
}

func newTestPair(t *testing.T, opts ...Option) (*Sender, *Receiver) {
	t.Helper()

	sender, err := NewSender(protocol.Version1_0, opts...)
	require.NoError(t, err)
	receiver, err := NewReceiver(opts...)
	require.NoError(t, err)

	return sender, receiver
}

func messages(handshakes []*handshake.Handshake) []handshake.Message {
	out := []handshake.Message{}
	for _, h := range handshakes {
		out = append(out, h.Message)
	}

	return out
}

func TestReceiverReassemblesFlight(t *testing.T) {
	sender, receiver := newTestPair(t, WithMaxFragmentLength(64))

	datagram := packHandshakesOne(t, sender, testServerFlight()...)

	in, err := receiver.HandleDatagram(datagram)
	require.NoError(t, err)
	assert.Empty(t, in.Records)
	require.Len(t, in.Handshakes, 3)
	assert.Equal(t, testServerFlight(), messages(in.Handshakes))

	for i, h := range in.Handshakes {
		assert.Equal(t, uint16(i), h.Header.MessageSequence) //nolint:gosec
		assert.False(t, h.Header.IsFragmented())
	}
}

func TestReceiverOutOfOrderRecords(t *testing.T) {
	sender, receiver := newTestPair(t, WithMaxFragmentLength(40))

	datagram := packHandshakesOne(t, sender, testServerFlight()...)
	records, err := recordlayer.UnpackDatagram(datagram)
	require.NoError(t, err)
	require.Greater(t, len(records), 3)

	var got []*handshake.Handshake
	for i := len(records) - 1; i >= 0; i-- {
		in, err := receiver.HandleDatagram(records[i])
		require.NoError(t, err)

		if i > 0 {
			assert.Empty(t, in.Handshakes, "released before message 0 arrived")
		}
		got = append(got, in.Handshakes...)
	}

	assert.Equal(t, testServerFlight(), messages(got))
}

func TestReceiverDropsRetransmission(t *testing.T) {
	sender, receiver := newTestPair(t)

	datagram := packHandshakesOne(t, sender, &handshake.MessageHelloVerifyRequest{Version: protocol.Version1_0, Cookie: []byte{0xaa}})

	in, err := receiver.HandleDatagram(datagram)
	require.NoError(t, err)
	require.Len(t, in.Handshakes, 1)
	assert.False(t, in.Retransmit)

	in, err = receiver.HandleDatagram(datagram)
	require.NoError(t, err)
	assert.Empty(t, in.Handshakes)
	assert.True(t, in.Retransmit)

	receiver.Reset()
	in, err = receiver.HandleDatagram(datagram)
	require.NoError(t, err)
	assert.Len(t, in.Handshakes, 1)
}

func TestReceiverReplayProtection(t *testing.T) {
	for name, test := range map[string]struct {
		opts       []Option
		wantSecond int
	}{
		"Disabled": {wantSecond: 1},
		"Enabled":  {opts: []Option{WithReplayProtectionWindow(64)}, wantSecond: 0},
	} {
		test := test
		t.Run(name, func(t *testing.T) {
			sender, receiver := newTestPair(t, test.opts...)
			require.NoError(t, sender.IncrementEpoch())

			datagram := packOne(t, sender, &protocol.ApplicationData{Data: []byte("hello")})

			in, err := receiver.HandleDatagram(datagram)
			require.NoError(t, err)
			require.Len(t, in.Records, 1)
			assert.Equal(t, &protocol.ApplicationData{Data: []byte("hello")}, in.Records[0].Content)

			in, err = receiver.HandleDatagram(datagram)
			require.NoError(t, err)
			assert.Len(t, in.Records, test.wantSecond)

			// the next sequence number is still accepted
			datagram = packOne(t, sender, &protocol.ApplicationData{Data: []byte("again")})
			in, err = receiver.HandleDatagram(datagram)
			require.NoError(t, err)
			assert.Len(t, in.Records, 1)
		})
	}
}

func TestReceiverKeepsGoodSiblings(t *testing.T) {
	sender, receiver := newTestPair(t)

	good := packOne(t, sender, &alert.Alert{Level: alert.Warning, Description: alert.CloseNotify})
	// alert with a one byte body
	bad := []byte{0x15, 0xfe, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x09, 0x00, 0x01, 0x01}
	hello := packHandshakesOne(t, sender, &handshake.MessageServerHelloDone{})

	datagram := append(append(append([]byte{}, good...), bad...), hello...)

	in, err := receiver.HandleDatagram(datagram)
	require.Error(t, err)
	assert.ErrorIs(t, err, protocol.ErrTruncatedBuffer)

	var recordErr *recordlayer.RecordError
	require.True(t, errors.As(err, &recordErr))
	assert.Equal(t, 1, recordErr.Index)

	require.Len(t, in.Records, 1)
	assert.Equal(t, &alert.Alert{Level: alert.Warning, Description: alert.CloseNotify}, in.Records[0].Content)
	require.Len(t, in.Handshakes, 1)
	assert.Equal(t, &handshake.MessageServerHelloDone{}, in.Handshakes[0].Message)
}

func TestReceiverEncryptedHandshake(t *testing.T) {
	_, receiver := newTestPair(t)

	datagram := []byte{0x16, 0xfe, 0xfd, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x01, 0x02, 0x03}
	in, err := receiver.HandleDatagram(datagram)
	require.NoError(t, err)
	assert.Empty(t, in.Handshakes)
	require.Len(t, in.Records, 1)
	assert.Equal(t, &handshake.Encrypted{Data: []byte{0x01, 0x02, 0x03}}, in.Records[0].Content)
}

func TestReceiverInconsistentFragment(t *testing.T) {
	_, receiver := newTestPair(t)

	first := testFragment(0, testBody(100), 0, 50)
	conflicting := testFragment(0, testBody(80), 50, 30)

	var datagram []byte
	for i, frag := range []*handshake.Fragment{first, conflicting} {
		record, err := recordlayer.New(protocol.Version1_0, 0, uint64(i), &handshake.Fragments{frag}) //nolint:gosec
		require.NoError(t, err)
		raw, err := record.Marshal()
		require.NoError(t, err)
		datagram = append(datagram, raw...)
	}

	in, err := receiver.HandleDatagram(datagram)
	assert.ErrorIs(t, err, protocol.ErrInconsistentFragment)
	assert.Empty(t, in.Handshakes)
}

func TestReceiverTrailingGarbage(t *testing.T) {
	sender, receiver := newTestPair(t)

	datagram := packOne(t, sender, &protocol.ChangeCipherSpec{})

	in, err := receiver.HandleDatagram(append(datagram, 0x16, 0xfe))
	assert.ErrorIs(t, err, protocol.ErrTrailingGarbage)
	assert.Len(t, in.Records, 1)
}

func TestReceiverConcurrentUse(t *testing.T) {
	sender, receiver := newTestPair(t, WithLoggerFactory(logging.NewDefaultLoggerFactory()))
	require.NoError(t, sender.IncrementEpoch())

	var datagrams [][]byte
	for i := 0; i < 32; i++ {
		datagrams = append(datagrams, packOne(t, sender, &protocol.ApplicationData{Data: []byte{byte(i)}}))
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0
	for _, datagram := range datagrams {
		wg.Add(1)
		go func(datagram []byte) {
			defer wg.Done()

			in, err := receiver.HandleDatagram(datagram)
			assert.NoError(t, err)

			mu.Lock()
			total += len(in.Records)
			mu.Unlock()
		}(datagram)
	}
	wg.Wait()

	assert.Equal(t, len(datagrams), total)
}

func TestReceiverAcrossDatagrams(t *testing.T) {
	sender, receiver := newTestPair(t)

	certificate := &handshake.MessageCertificate{Certificates: handshake.NewCertificates(testBody(4000))}
	datagrams, err := sender.PackHandshakes(certificate, &handshake.MessageServerHelloDone{})
	require.NoError(t, err)
	require.Greater(t, len(datagrams), 1)

	var got []*handshake.Handshake
	for _, datagram := range datagrams {
		in, err := receiver.HandleDatagram(datagram)
		require.NoError(t, err)
		got = append(got, in.Handshakes...)
	}

	assert.Equal(t, []handshake.Message{certificate, &handshake.MessageServerHelloDone{}}, messages(got))
}

func TestReceiverAfterFailedSend(t *testing.T) {
	sender, receiver := newTestPair(t)

	_, err := sender.PackHandshakes(&handshake.MessageServerHelloDone{}, &handshake.MessageClientKeyExchange{})
	require.Error(t, err)

	in, err := receiver.HandleDatagram(packHandshakesOne(t, sender, &handshake.MessageServerHelloDone{}))
	require.NoError(t, err)
	require.Len(t, in.Handshakes, 1)
	assert.Equal(t, &handshake.MessageServerHelloDone{}, in.Handshakes[0].Message)
}

func TestReceiverClientHelloWithExtensions(t *testing.T) {
	sender, receiver := newTestPair(t)

	clientHello := &handshake.MessageClientHello{
		Version:            protocol.Version1_2,
		SessionID:          []byte{},
		Cookie:             []byte{0x01},
		CipherSuites:       handshake.CipherSuites{handshake.TLS_RSA_WITH_AES_128_CBC_SHA},
		CompressionMethods: []protocol.CompressionMethodID{protocol.CompressionMethodNull},
		Extensions:         []byte{0x00, 0x04, 0x00, 0x17, 0x00, 0x00},
	}
	datagram := packHandshakesOne(t, sender, clientHello)

	in, err := receiver.HandleDatagram(datagram)
	require.NoError(t, err)
	require.Len(t, in.Handshakes, 1)
	assert.Equal(t, clientHello, in.Handshakes[0].Message)

	raw, err := in.Handshakes[0].Marshal()
	require.NoError(t, err)
	assert.Equal(t, datagram[recordlayer.HeaderSize:], raw)
}
