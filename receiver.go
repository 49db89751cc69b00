// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dtls

import (
	"errors"
	"sync"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/dtlscodec/dtls/pkg/protocol/handshake"
	"github.com/dtlscodec/dtls/pkg/protocol/recordlayer"
	"github.com/pion/logging"
	"github.com/pion/transport/v3/replaydetector"
)

// Inbound is what a Receiver extracted from one datagram.
type Inbound struct {
	// Handshakes completed by this datagram, in message sequence order.
	Handshakes []*handshake.Handshake
	// Records that are not plaintext handshake records, in datagram order.
	Records []*recordlayer.RecordLayer
	// Retransmit is set when the datagram repeated a handshake message
	// that was already delivered, meaning the peer has not received our
	// last flight.
	Retransmit bool
}

// Receiver turns datagrams into whole handshake messages and other
// records. Plaintext handshake fragments are reassembled and released in
// message sequence order; retransmitted messages that were already
// released are dropped and reported through Inbound.Retransmit. It is
// safe for concurrent use.
type Receiver struct {
	lock sync.Mutex

	log    logging.LeveledLogger
	buffer *FragmentBuffer

	replayProtectionWindow uint
	replayDetector         map[uint16]replaydetector.ReplayDetector

	nextMessageSequence uint16
}

// NewReceiver creates a Receiver.
func NewReceiver(opts ...Option) (*Receiver, error) {
	cfg, err := buildConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Receiver{
		log:                    cfg.loggerFactory.NewLogger("dtls"),
		buffer:                 newFragmentBuffer(cfg),
		replayProtectionWindow: cfg.replayProtectionWindow,
		replayDetector:         map[uint16]replaydetector.ReplayDetector{},
	}, nil
}

// HandleDatagram decodes every record in buf. Records that fail to
// decode, and fragments the buffer refuses, are logged and skipped;
// their errors are returned joined alongside everything that did decode.
func (r *Receiver) HandleDatagram(buf []byte) (*Inbound, error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	in := &Inbound{}
	var errs []error

	raws, err := recordlayer.UnpackDatagram(buf)
	if err != nil {
		r.log.Debugf("malformed datagram: %v", err)
		errs = append(errs, &recordlayer.RecordError{Index: len(raws), Err: err})
	}

	for i, raw := range raws {
		if err := r.handleRecord(in, raw); err != nil {
			r.log.Debugf("discarded record %d: %v", i, err)
			errs = append(errs, &recordlayer.RecordError{Index: i, Err: err})
		}
	}

	return in, errors.Join(errs...)
}

func (r *Receiver) handleRecord(in *Inbound, raw []byte) error {
	record := &recordlayer.RecordLayer{}
	if err := record.Unmarshal(raw); err != nil {
		return err
	}
	h := record.Header

	var markPacketAsValid func()
	if r.replayProtectionWindow > 0 {
		detector, ok := r.replayDetector[h.Epoch]
		if !ok {
			detector = replaydetector.New(r.replayProtectionWindow, recordlayer.MaxSequenceNumber)
			r.replayDetector[h.Epoch] = detector
		}

		accept, ok := detector.Check(h.SequenceNumber)
		if !ok {
			r.log.Debugf("discarded duplicated packet (epoch: %d, seq: %d)", h.Epoch, h.SequenceNumber)

			return nil
		}
		markPacketAsValid = func() { accept() }
	}

	r.log.Tracef("<- %s (epoch: %d, seq: %d, len: %d)", h.ContentType, h.Epoch, h.SequenceNumber, h.ContentLen)

	if h.ContentType == protocol.ContentTypeHandshake && h.Epoch == 0 {
		var frags handshake.Fragments
		if err := frags.Unmarshal(raw[recordlayer.HeaderSize : recordlayer.HeaderSize+int(h.ContentLen)]); err != nil {
			return err
		}
		if err := r.pushFragments(in, h.Epoch, frags); err != nil {
			return err
		}
	} else {
		in.Records = append(in.Records, record)
	}

	if markPacketAsValid != nil {
		markPacketAsValid()
	}

	return nil
}

func (r *Receiver) pushFragments(in *Inbound, epoch uint16, frags handshake.Fragments) error {
	var errs []error
	for _, frag := range frags {
		if frag.Header.MessageSequence < r.nextMessageSequence {
			r.log.Debugf("ignoring retransmitted handshake message %d", frag.Header.MessageSequence)
			in.Retransmit = in.Retransmit || frag.Header.FragmentOffset == 0

			continue
		}

		if _, err := r.buffer.Push(epoch, frag); err != nil {
			errs = append(errs, err)

			continue
		}
	}

	for {
		msg, ok, err := r.buffer.PopHandshake(r.nextMessageSequence)
		if !ok {
			break
		}
		r.nextMessageSequence++

		if err != nil {
			errs = append(errs, err)

			continue
		}
		r.log.Tracef("<- handshake %s (seq: %d)", msg.Header.Type, msg.Header.MessageSequence)
		in.Handshakes = append(in.Handshakes, msg)
	}

	return errors.Join(errs...)
}

// Reset forgets buffered fragments, delivered message sequences and
// replay state, as for a new handshake.
func (r *Receiver) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.buffer.Reset()
	r.replayDetector = map[uint16]replaydetector.ReplayDetector{}
	r.nextMessageSequence = 0
}
