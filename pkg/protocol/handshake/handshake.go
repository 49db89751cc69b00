// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package handshake provides the DTLS wire protocol for handshakes
package handshake

import (
	"fmt"

	"github.com/dtlscodec/dtls/internal/util"
	"github.com/dtlscodec/dtls/pkg/protocol"
)

// Type is the unique identifier for each handshake message
// https://tools.ietf.org/html/rfc5246#section-7.4
type Type uint8

// Types of DTLS Handshake messages we know about.
const (
	TypeHelloRequest       Type = 0
	TypeClientHello        Type = 1
	TypeServerHello        Type = 2
	TypeHelloVerifyRequest Type = 3
	TypeCertificate        Type = 11
	TypeServerKeyExchange  Type = 12
	TypeCertificateRequest Type = 13
	TypeServerHelloDone    Type = 14
	TypeCertificateVerify  Type = 15
	TypeClientKeyExchange  Type = 16
	TypeFinished           Type = 20
)

// String returns the string representation of this type.
func (t Type) String() string {
	switch t {
	case TypeHelloRequest:
		return "HelloRequest"
	case TypeClientHello:
		return "ClientHello"
	case TypeServerHello:
		return "ServerHello"
	case TypeHelloVerifyRequest:
		return "HelloVerifyRequest"
	case TypeCertificate:
		return "Certificate"
	case TypeServerKeyExchange:
		return "ServerKeyExchange"
	case TypeCertificateRequest:
		return "CertificateRequest"
	case TypeServerHelloDone:
		return "ServerHelloDone"
	case TypeCertificateVerify:
		return "CertificateVerify"
	case TypeClientKeyExchange:
		return "ClientKeyExchange"
	case TypeFinished:
		return "Finished"
	}

	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// Message is the body of a Handshake datagram. The set of
// implementations is closed, a type switch over it covers:
// *MessageHelloRequest, *MessageClientHello, *MessageServerHello,
// *MessageHelloVerifyRequest, *MessageCertificate,
// *MessageServerKeyExchange, *MessageServerHelloDone,
// *MessageClientKeyExchange, *MessageFinished and *MessageUnknown.
type Message interface {
	Marshal() ([]byte, error)
	Unmarshal(data []byte) error
	Type() Type

	isHandshakeMessage()
}

// newMessage returns an empty body for the type byte. Types without a
// codec are carried as MessageUnknown.
func newMessage(t Type) Message {
	switch t {
	case TypeHelloRequest:
		return &MessageHelloRequest{}
	case TypeClientHello:
		return &MessageClientHello{}
	case TypeServerHello:
		return &MessageServerHello{}
	case TypeHelloVerifyRequest:
		return &MessageHelloVerifyRequest{}
	case TypeCertificate:
		return &MessageCertificate{}
	case TypeServerKeyExchange:
		return &MessageServerKeyExchange{}
	case TypeServerHelloDone:
		return &MessageServerHelloDone{}
	case TypeClientKeyExchange:
		return &MessageClientKeyExchange{}
	case TypeFinished:
		return &MessageFinished{}
	default:
		return &MessageUnknown{HandshakeType: t}
	}
}

// Handshake protocol is responsible for selecting a cipher spec and
// generating a master secret, which together comprise the primary
// cryptographic parameters associated with a secure session.  The
// handshake protocol can also optionally authenticate parties who have
// certificates signed by a trusted certificate authority.
// https://tools.ietf.org/html/rfc5246#section-7.3
//
// A Handshake always holds a whole message; partial messages travel
// as Fragment.
type Handshake struct {
	Header  Header
	Message Message
}

// NewHandshake wraps msg with an unfragmented header for messageSequence.
func NewHandshake(messageSequence uint16, msg Message) (*Handshake, error) {
	if msg == nil {
		return nil, errHandshakeMessageUnset
	}
	body, err := msg.Marshal()
	if err != nil {
		return nil, err
	}
	if uint64(len(body)) > maxUint24 {
		return nil, fmt.Errorf("%w: handshake body of %d bytes", protocol.ErrValueOutOfRange, len(body))
	}

	length := uint32(len(body)) //nolint:gosec // checked above

	return &Handshake{
		Header: Header{
			Type:            msg.Type(),
			Length:          length,
			MessageSequence: messageSequence,
			FragmentOffset:  0,
			FragmentLength:  length,
		},
		Message: msg,
	}, nil
}

// ContentType returns what kind of content this message is carrying.
func (h Handshake) ContentType() protocol.ContentType {
	return protocol.ContentTypeHandshake
}

// Marshal encodes a handshake into a binary message.
func (h *Handshake) Marshal() ([]byte, error) {
	body, err := h.marshalBody()
	if err != nil {
		return nil, err
	}

	header, err := h.Header.Marshal()
	if err != nil {
		return nil, err
	}

	return append(header, body...), nil
}

func (h *Handshake) marshalBody() ([]byte, error) {
	switch {
	case h.Message == nil:
		return nil, errHandshakeMessageUnset
	case h.Header.Type != h.Message.Type():
		return nil, fmt.Errorf("%w: header %s, message %s", errHandshakeTypeMismatch, h.Header.Type, h.Message.Type())
	case h.Header.FragmentOffset != 0 || h.Header.FragmentLength != h.Header.Length:
		return nil, errUnableToMarshalFragmented
	}

	body, err := h.Message.Marshal()
	if err != nil {
		return nil, err
	}
	if uint64(len(body)) != uint64(h.Header.Length) {
		return nil, fmt.Errorf("%w: header declares %d bytes, body is %d", protocol.ErrLengthMismatch, h.Header.Length, len(body))
	}

	return body, nil
}

// Unmarshal decodes a handshake from a binary message. Bytes past the
// declared length are ignored.
func (h *Handshake) Unmarshal(data []byte) error {
	if err := h.Header.Unmarshal(data); err != nil {
		return err
	}
	if h.Header.IsFragmented() {
		return errHandshakeFragmented
	}

	body := data[HeaderLength:]
	if uint64(len(body)) < uint64(h.Header.Length) {
		return errDeclaredLength("handshake", int(h.Header.Length), len(body))
	}

	h.Message = newMessage(h.Header.Type)

	return h.Message.Unmarshal(body[:h.Header.Length])
}

// Fragment splits the handshake into fragments carrying at most
// maxFragmentLength body bytes each. An empty body yields one empty
// fragment.
func (h *Handshake) Fragment(maxFragmentLength int) ([]*Fragment, error) {
	if maxFragmentLength <= 0 {
		return nil, errInvalidFragmentLength
	}

	body, err := h.marshalBody()
	if err != nil {
		return nil, err
	}
	if err := h.Header.Validate(); err != nil {
		return nil, err
	}

	chunks := util.SplitBytes(body, maxFragmentLength)
	if len(chunks) == 0 {
		chunks = [][]byte{{}}
	}

	out := make([]*Fragment, 0, len(chunks))
	offset := 0
	for _, chunk := range chunks {
		header := h.Header
		header.FragmentOffset = uint32(offset)     //nolint:gosec // bounded by Header.Length
		header.FragmentLength = uint32(len(chunk)) //nolint:gosec // bounded by maxFragmentLength
		out = append(out, &Fragment{Header: header, Data: chunk})
		offset += len(chunk)
	}

	return out, nil
}
