// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"fmt"

	"github.com/dtlscodec/dtls/pkg/protocol"
)

// Fragment is one handshake unit as it appears in a record: a header
// and the FragmentLength body bytes starting at FragmentOffset. A
// Fragment that is not fragmented holds a whole message.
type Fragment struct {
	Header Header
	Data   []byte
}

// Marshal encodes the fragment.
func (f *Fragment) Marshal() ([]byte, error) {
	if uint64(len(f.Data)) != uint64(f.Header.FragmentLength) {
		return nil, fmt.Errorf("%w: fragment length %d, data %d", protocol.ErrLengthMismatch, f.Header.FragmentLength, len(f.Data))
	}

	header, err := f.Header.Marshal()
	if err != nil {
		return nil, err
	}

	return append(header, f.Data...), nil
}

// Unmarshal decodes one fragment from the front of data. Bytes after
// the fragment are ignored; see Size.
func (f *Fragment) Unmarshal(data []byte) error {
	if err := f.Header.Unmarshal(data); err != nil {
		return err
	}

	rest := data[HeaderLength:]
	if uint64(len(rest)) < uint64(f.Header.FragmentLength) {
		return errDeclaredLength("fragment", int(f.Header.FragmentLength), len(rest))
	}
	f.Data = append([]byte{}, rest[:f.Header.FragmentLength]...)

	return nil
}

// Size is the encoded length of the fragment.
func (f *Fragment) Size() int {
	return HeaderLength + int(f.Header.FragmentLength)
}

// Handshake decodes the body of an unfragmented Fragment.
func (f *Fragment) Handshake() (*Handshake, error) {
	if f.Header.IsFragmented() {
		return nil, errHandshakeFragmented
	}
	if uint64(len(f.Data)) != uint64(f.Header.Length) {
		return nil, fmt.Errorf("%w: header declares %d bytes, data is %d", protocol.ErrLengthMismatch, f.Header.Length, len(f.Data))
	}

	msg := newMessage(f.Header.Type)
	if err := msg.Unmarshal(f.Data); err != nil {
		return nil, err
	}

	return &Handshake{Header: f.Header, Message: msg}, nil
}

// Fragments are the handshake units carried by a single record, in
// order. A record may hold several small messages or pieces of larger
// ones.
type Fragments []*Fragment

// ContentType returns what kind of content this message is carrying.
func (f Fragments) ContentType() protocol.ContentType {
	return protocol.ContentTypeHandshake
}

// Marshal encodes every fragment back to back.
func (f *Fragments) Marshal() ([]byte, error) {
	out := []byte{}
	for _, frag := range *f {
		raw, err := frag.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, raw...)
	}

	return out, nil
}

// Unmarshal decodes every fragment in data. An empty payload holds no
// handshake and is rejected.
func (f *Fragments) Unmarshal(data []byte) error {
	if len(data) == 0 {
		return errBufferTooSmall
	}

	out := Fragments{}
	for len(data) > 0 {
		frag := &Fragment{}
		if err := frag.Unmarshal(data); err != nil {
			return fmt.Errorf("fragment %d: %w", len(out), err)
		}
		out = append(out, frag)
		data = data[frag.Size():]
	}
	*f = out

	return nil
}

// UnmarshalContent decodes the payload of a plaintext handshake record.
// A payload holding exactly one whole message yields a *Handshake,
// anything else yields *Fragments for reassembly.
func UnmarshalContent(data []byte) (protocol.Content, error) {
	var frags Fragments
	if err := frags.Unmarshal(data); err != nil {
		return nil, err
	}

	if len(frags) == 1 && !frags[0].Header.IsFragmented() {
		return frags[0].Handshake()
	}

	return &frags, nil
}
