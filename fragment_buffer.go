// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dtls

import (
	"fmt"
	"sort"

	"github.com/dtlscodec/dtls/pkg/protocol"
	"github.com/dtlscodec/dtls/pkg/protocol/handshake"
	"github.com/pion/logging"
)

type fragment struct {
	offset uint32
	data   []byte
}

type fragments struct {
	// non-overlapping chunks, sorted by offset.
	frags []*fragment

	receivedLength  uint32 // union length of covered bytes (no double-counting)
	handshakeLength uint32

	epoch      uint16
	baseHeader handshake.Header // used to rebuild header on Pop
}

func (m *fragments) complete() bool {
	return m.receivedLength == m.handshakeLength
}

// FragmentBuffer reassembles handshake messages from fragments. Each
// message sequence number has its own buffer; overlapping fragments only
// fill the bytes not yet received. A FragmentBuffer is not safe for
// concurrent use.
type FragmentBuffer struct {
	// map of MessageSequenceNumbers that hold slices of fragments
	cache map[uint16]*fragments

	maxSize  int
	maxCount int

	totalBufferSize    int // total stored payload bytes across all messages (no overlaps)
	totalFragmentCount int // total stored chunks across all messages

	log logging.LeveledLogger
}

// NewFragmentBuffer creates an empty FragmentBuffer. It honours
// WithFragmentBufferLimits and WithLoggerFactory.
func NewFragmentBuffer(opts ...Option) (*FragmentBuffer, error) {
	cfg, err := buildConfig(opts...)
	if err != nil {
		return nil, err
	}

	return newFragmentBuffer(cfg), nil
}

func newFragmentBuffer(cfg *config) *FragmentBuffer {
	return &FragmentBuffer{
		cache:    map[uint16]*fragments{},
		maxSize:  cfg.fragmentBufferMaxSize,
		maxCount: cfg.fragmentBufferMaxCount,
		log:      cfg.loggerFactory.NewLogger("dtls"),
	}
}

// scanUncovered iterates uncovered sub-ranges of [start,end) given existing non-overlapping,
// sorted fragments. visit is called with [uStart,uEnd) in ascending order.
func (m *fragments) scanUncovered(start, end uint32, visit func(uStart, uEnd uint32)) {
	if start >= end {
		return
	}

	// find first fragment with end > start.
	i := sort.Search(len(m.frags), func(i int) bool {
		ex := m.frags[i]

		return ex.offset+uint32(len(ex.data)) > start //nolint:gosec // bounded by caps
	})

	pos := start
	for ; i < len(m.frags); i++ {
		ex := m.frags[i]
		exStart := ex.offset
		if exStart >= end {
			break
		}
		exEnd := exStart + uint32(len(ex.data)) //nolint:gosec // bounded by caps

		if exStart > pos {
			if uEnd := min(exStart, end); uEnd > pos {
				visit(pos, uEnd)
			}
		}

		if exEnd > pos {
			pos = exEnd
			if pos >= end {
				return
			}
		}
	}

	if pos < end {
		visit(pos, end)
	}
}

// insertMany merges a sorted list of new fragments into the existing sorted list.
func (m *fragments) insertMany(newFrags []*fragment) {
	if len(newFrags) == 0 {
		return
	}

	if len(m.frags) == 0 {
		m.frags = newFrags

		return
	}

	merged := make([]*fragment, 0, len(m.frags)+len(newFrags))
	i := 0 //nolint:varnamelen
	j := 0 //nolint:varnamelen

	for i < len(m.frags) && j < len(newFrags) {
		if m.frags[i].offset < newFrags[j].offset {
			merged = append(merged, m.frags[i])
			i++
		} else {
			merged = append(merged, newFrags[j])
			j++
		}
	}

	merged = append(merged, m.frags[i:]...)
	merged = append(merged, newFrags[j:]...)

	m.frags = merged
}

// Push stores a fragment received under epoch. It reports whether the
// message the fragment belongs to is now complete. Pushing bytes that
// are already held is a no-op; a fragment whose type, total length or
// epoch disagrees with the message's earlier fragments is refused with
// ErrInconsistentFragment.
func (f *FragmentBuffer) Push(epoch uint16, frag *handshake.Fragment) (complete bool, err error) { //nolint:cyclop
	if frag == nil {
		return false, errFragmentUnset
	}

	hdr := frag.Header
	if err := hdr.Validate(); err != nil {
		return false, err
	}
	if uint64(len(frag.Data)) != uint64(hdr.FragmentLength) {
		return false, fmt.Errorf("%w: fragment length %d, data %d", protocol.ErrLengthMismatch, hdr.FragmentLength, len(frag.Data))
	}

	// per-message cap.
	if int(hdr.Length) > f.maxSize {
		f.log.Warnf("handshake message %d of %d bytes exceeds fragment buffer size", hdr.MessageSequence, hdr.Length)

		return false, errFragmentBufferOverflow
	}

	messageFragments, ok := f.cache[hdr.MessageSequence]
	if !ok {
		messageFragments = &fragments{
			handshakeLength: hdr.Length,
			epoch:           epoch,
			baseHeader:      hdr,
		}
	} else {
		// must be consistent across fragments.
		if messageFragments.handshakeLength != hdr.Length || messageFragments.baseHeader.Type != hdr.Type {
			return false, fmt.Errorf("%w: message %d was %s of %d bytes, fragment says %s of %d bytes",
				errFragmentHeaderMismatch, hdr.MessageSequence,
				messageFragments.baseHeader.Type, messageFragments.handshakeLength, hdr.Type, hdr.Length)
		}

		// do not mix epochs for a single handshake message.
		if messageFragments.epoch != epoch {
			return false, errFragmentEpochMismatch
		}

		if messageFragments.complete() {
			return true, nil
		}
	}

	fragStart := hdr.FragmentOffset
	fragEnd := fragStart + hdr.FragmentLength

	// first pass: compute how many unique bytes/chunks to add.
	var addedBytes uint32
	var addedChunks int
	messageFragments.scanUncovered(fragStart, fragEnd, func(uStart, uEnd uint32) {
		addedBytes += uEnd - uStart
		addedChunks++
	})

	if f.totalBufferSize+int(addedBytes) > f.maxSize || f.totalFragmentCount+addedChunks > f.maxCount {
		f.log.Warnf("fragment buffer full (%d bytes, %d chunks), dropping fragment of message %d",
			f.totalBufferSize, f.totalFragmentCount, hdr.MessageSequence)

		return false, errFragmentBufferOverflow
	}

	if addedBytes > 0 {
		// one allocation for all bytes to store from this fragment.
		dataBlob := make([]byte, addedBytes)
		blobOff := uint32(0)
		newFrags := make([]*fragment, 0, addedChunks)

		messageFragments.scanUncovered(fragStart, fragEnd, func(uStart, uEnd uint32) {
			uLen := uEnd - uStart
			dst := dataBlob[blobOff : blobOff+uLen]
			copy(dst, frag.Data[uStart-fragStart:uEnd-fragStart])
			blobOff += uLen

			newFrags = append(newFrags, &fragment{offset: uStart, data: dst})
		})

		messageFragments.insertMany(newFrags)
		messageFragments.receivedLength += addedBytes
		f.totalBufferSize += int(addedBytes)
		f.totalFragmentCount += len(newFrags)
	}

	f.cache[hdr.MessageSequence] = messageFragments

	return messageFragments.complete(), nil
}

// Pop removes a complete message and returns it as a single
// unfragmented Fragment. It returns false if the message is missing
// or still incomplete.
func (f *FragmentBuffer) Pop(messageSequence uint16) (*handshake.Fragment, bool) {
	frags, ok := f.cache[messageSequence]
	if !ok || !frags.complete() {
		return nil, false
	}

	// reassemble: stored chunks are non-overlapping and cover the whole message.
	rawMessage := make([]byte, frags.handshakeLength)
	for _, frag := range frags.frags {
		copy(rawMessage[frag.offset:], frag.data)
	}

	header := frags.baseHeader
	header.FragmentOffset = 0
	header.FragmentLength = header.Length

	f.totalBufferSize -= int(frags.receivedLength)
	f.totalFragmentCount -= len(frags.frags)
	delete(f.cache, messageSequence)

	return &handshake.Fragment{Header: header, Data: rawMessage}, true
}

// PopHandshake is Pop followed by decoding the message body. The message
// is removed even when its body fails to decode.
func (f *FragmentBuffer) PopHandshake(messageSequence uint16) (*handshake.Handshake, bool, error) {
	frag, ok := f.Pop(messageSequence)
	if !ok {
		return nil, false, nil
	}

	h, err := frag.Handshake()
	if err != nil {
		return nil, true, fmt.Errorf("handshake message %d: %w", messageSequence, err)
	}

	return h, true, nil
}

// Pending returns the number of messages with at least one fragment held.
func (f *FragmentBuffer) Pending() int {
	return len(f.cache)
}

// Reset drops every buffered fragment.
func (f *FragmentBuffer) Reset() {
	f.cache = map[uint16]*fragments{}
	f.totalBufferSize = 0
	f.totalFragmentCount = 0
}
