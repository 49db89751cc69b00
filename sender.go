// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dtls

import (
	"math"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/dtlscodec/dtls/pkg/protocol/handshake"
	"github.com/dtlscodec/dtls/pkg/protocol/recordlayer"
	"github.com/pion/logging"
)

// Sender frames outgoing content into records and bundles the records
// into datagrams no larger than the MTU. It numbers records per epoch
// and handshake messages across the handshake, and splits handshake
// messages to the configured fragment length. Sequence numbers are only
// consumed by calls that succeed. The caller decides when the epoch
// changes. A Sender is not safe for concurrent use.
type Sender struct {
	log     logging.LeveledLogger
	version protocol.Version

	epoch               uint16
	localSequenceNumber []uint64 // uint48
	messageSequence     uint16

	mtu               int
	maxFragmentLength int
}

// NewSender creates a Sender writing records with version. It honours
// WithMTU, WithMaxFragmentLength and WithLoggerFactory.
func NewSender(version protocol.Version, opts ...Option) (*Sender, error) {
	cfg, err := buildConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Sender{
		log:                 cfg.loggerFactory.NewLogger("dtls"),
		version:             version,
		localSequenceNumber: []uint64{0},
		mtu:                 cfg.mtu,
		maxFragmentLength:   cfg.fragmentLength(),
	}, nil
}

// Epoch returns the epoch new records are written under.
func (s *Sender) Epoch() uint16 {
	return s.epoch
}

// IncrementEpoch moves to the next epoch; its record sequence numbers
// start again at zero. Epochs never wrap.
func (s *Sender) IncrementEpoch() error {
	if s.epoch == math.MaxUint16 {
		return errEpochOverflow
	}

	s.epoch++
	for len(s.localSequenceNumber) <= int(s.epoch) {
		s.localSequenceNumber = append(s.localSequenceNumber, 0)
	}
	s.log.Debugf("sender moved to epoch %d", s.epoch)

	return nil
}

// Pack writes each content as its own record and returns the datagrams
// carrying them, in order.
func (s *Sender) Pack(contents ...protocol.Content) ([][]byte, error) {
	seq := s.localSequenceNumber[s.epoch]

	records := make([]*recordlayer.RecordLayer, 0, len(contents))
	rawPackets := make([][]byte, 0, len(contents))
	for _, content := range contents {
		record, err := recordlayer.New(s.version, s.epoch, seq, content)
		if err != nil {
			return nil, err
		}
		raw, err := record.Marshal()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
		rawPackets = append(rawPackets, raw)
		seq++
	}
	s.localSequenceNumber[s.epoch] = seq

	for _, record := range records {
		h := record.Header
		s.log.Tracef("-> %s (epoch: %d, seq: %d, len: %d)", h.ContentType, h.Epoch, h.SequenceNumber, h.ContentLen)
	}

	return s.compactRawPackets(rawPackets), nil
}

// PackHandshakes assigns the next message sequence numbers to msgs,
// fragments them and returns the datagrams holding one fragment per
// record.
func (s *Sender) PackHandshakes(msgs ...handshake.Message) ([][]byte, error) {
	messageSequence := s.messageSequence

	var contents []protocol.Content
	for _, msg := range msgs {
		h, err := handshake.NewHandshake(messageSequence, msg)
		if err != nil {
			return nil, err
		}

		frags, err := h.Fragment(s.maxFragmentLength)
		if err != nil {
			return nil, err
		}
		for _, frag := range frags {
			contents = append(contents, &handshake.Fragments{frag})
		}
		messageSequence++
	}

	datagrams, err := s.Pack(contents...)
	if err != nil {
		return nil, err
	}
	s.messageSequence = messageSequence

	return datagrams, nil
}

// compactRawPackets concatenates records into datagrams, starting a new
// one when the next record would exceed the MTU. A record larger than
// the MTU travels alone.
func (s *Sender) compactRawPackets(rawPackets [][]byte) [][]byte {
	combinedRawPackets := make([][]byte, 0)
	currentCombinedRawPacket := make([]byte, 0)

	for _, rawPacket := range rawPackets {
		if len(currentCombinedRawPacket) > 0 && len(currentCombinedRawPacket)+len(rawPacket) > s.mtu {
			combinedRawPackets = append(combinedRawPackets, currentCombinedRawPacket)
			currentCombinedRawPacket = []byte{}
		}
		currentCombinedRawPacket = append(currentCombinedRawPacket, rawPacket...)
	}

	if len(currentCombinedRawPacket) > 0 {
		combinedRawPackets = append(combinedRawPackets, currentCombinedRawPacket)
	}

	return combinedRawPackets
}
