// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package alert implements TLS alert protocol https://tools.ietf.org/html/rfc5246#section-7.2
package alert

import (
	"fmt"

	"github.com/dtlscodec/dtls/pkg/protocol"
)

var errBufferTooSmall = fmt.Errorf("%w: alert must be 2 bytes", protocol.ErrTruncatedBuffer)

// Level is the level of the TLS Alert.
type Level byte

// Level enums.
const (
	Warning Level = 1
	Fatal   Level = 2
)

func (l Level) String() string {
	switch l {
	case Warning:
		return "LevelWarning"
	case Fatal:
		return "LevelFatal"
	default:
		return "Invalid alert level"
	}
}

// Description is the extended info of the TLS Alert.
type Description byte

// Description enums.
const (
	CloseNotify            Description = 0
	UnexpectedMessage      Description = 10
	BadRecordMac           Description = 20
	DecryptionFailed       Description = 21
	RecordOverflow         Description = 22
	DecompressionFailure   Description = 30
	HandshakeFailure       Description = 40
	NoCertificate          Description = 41
	BadCertificate         Description = 42
	UnsupportedCertificate Description = 43
	CertificateRevoked     Description = 44
	CertificateExpired     Description = 45
	CertificateUnknown     Description = 46
	IllegalParameter       Description = 47
	UnknownCA              Description = 48
	AccessDenied           Description = 49
	DecodeError            Description = 50
	DecryptError           Description = 51
	ExportRestriction      Description = 60
	ProtocolVersion        Description = 70
	InsufficientSecurity   Description = 71
	InternalError          Description = 80
	UserCanceled           Description = 90
	NoRenegotiation        Description = 100
	UnsupportedExtension   Description = 110
)

var descriptionNames = map[Description]string{ //nolint:gochecknoglobals
	CloseNotify:            "CloseNotify",
	UnexpectedMessage:      "UnexpectedMessage",
	BadRecordMac:           "BadRecordMac",
	DecryptionFailed:       "DecryptionFailed",
	RecordOverflow:         "RecordOverflow",
	DecompressionFailure:   "DecompressionFailure",
	HandshakeFailure:       "HandshakeFailure",
	NoCertificate:          "NoCertificate",
	BadCertificate:         "BadCertificate",
	UnsupportedCertificate: "UnsupportedCertificate",
	CertificateRevoked:     "CertificateRevoked",
	CertificateExpired:     "CertificateExpired",
	CertificateUnknown:     "CertificateUnknown",
	IllegalParameter:       "IllegalParameter",
	UnknownCA:              "UnknownCA",
	AccessDenied:           "AccessDenied",
	DecodeError:            "DecodeError",
	DecryptError:           "DecryptError",
	ExportRestriction:      "ExportRestriction",
	ProtocolVersion:        "ProtocolVersion",
	InsufficientSecurity:   "InsufficientSecurity",
	InternalError:          "InternalError",
	UserCanceled:           "UserCanceled",
	NoRenegotiation:        "NoRenegotiation",
	UnsupportedExtension:   "UnsupportedExtension",
}

func (d Description) String() string {
	if name, ok := descriptionNames[d]; ok {
		return name
	}

	return "Invalid alert description"
}

// Alert is one of the content types supported by the TLS record layer.
// Alert messages convey the severity of the message
// (warning or fatal) and a description of the alert. Alert messages
// with a level of fatal result in the immediate termination of the
// connection.
// https://tools.ietf.org/html/rfc5246#section-7.2
type Alert struct {
	Level       Level
	Description Description
}

// ContentType returns the ContentType of this Content.
func (a Alert) ContentType() protocol.ContentType {
	return protocol.ContentTypeAlert
}

// Marshal returns the encoded alert.
func (a *Alert) Marshal() ([]byte, error) {
	return []byte{byte(a.Level), byte(a.Description)}, nil
}

// Unmarshal populates the alert from binary data.
func (a *Alert) Unmarshal(data []byte) error {
	if len(data) != 2 {
		return errBufferTooSmall
	}

	a.Level = Level(data[0])
	a.Description = Description(data[1])

	return nil
}

func (a *Alert) String() string {
	return fmt.Sprintf("Alert %s: %s", a.Level, a.Description)
}
