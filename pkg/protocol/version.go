// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package protocol provides the DTLS wire format
package protocol

import "fmt"

// VersionLength is the encoded size of a Version.
const VersionLength = 2

// Version enums.
var (
	Version1_0 = Version{Major: 0xfe, Minor: 0xff} //nolint:gochecknoglobals
	Version1_2 = Version{Major: 0xfe, Minor: 0xfd} //nolint:gochecknoglobals
	Version1_3 = Version{Major: 0xfe, Minor: 0xfc} //nolint:gochecknoglobals
)

// Version is the minor/major value in the RecordLayer
// and ClientHello/ServerHello. Pairs that are not a known DTLS
// version are carried verbatim.
//
// https://tools.ietf.org/html/rfc4346#section-6.2.1
type Version struct {
	Major, Minor uint8
}

// Equal determines if two protocol versions are equal.
func (v Version) Equal(x Version) bool {
	return v.Major == x.Major && v.Minor == x.Minor
}

// String returns the DTLS name of the version, or the raw pair if unknown.
func (v Version) String() string {
	switch v {
	case Version1_0:
		return "DTLS 1.0"
	case Version1_2:
		return "DTLS 1.2"
	case Version1_3:
		return "DTLS 1.3"
	default:
		return fmt.Sprintf("unknown(0x%02x%02x)", v.Major, v.Minor)
	}
}

// Marshal encodes the version as two bytes.
func (v Version) Marshal() []byte {
	return []byte{v.Major, v.Minor}
}

// Unmarshal populates the version from the first two bytes of data.
func (v *Version) Unmarshal(data []byte) error {
	if len(data) < VersionLength {
		return ErrTruncatedBuffer
	}
	v.Major, v.Minor = data[0], data[1]

	return nil
}

// IsValidBytes returns true if the bytes represent a valid DTLS version as defined in RFC9147 below.
//
// https://tools.ietf.org/html/rfc9147#section-5.3 (see legacy_version)
func IsValidBytes(major uint8, minor uint8) bool {
	return major == 0xfe && (minor == 0xff || minor == 0xfd || minor == 0xfc)
}

// IsValidVersion returns true if the version is one of the named DTLS versions.
func IsValidVersion(v Version) bool {
	return IsValidBytes(v.Major, v.Minor)
}
