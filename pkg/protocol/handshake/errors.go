// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"errors"
	"fmt"

	"github.com/dtlscodec/dtls/pkg/protocol"
)

// Typed errors. Each wraps one of the protocol error kinds.
var (
	errBufferTooSmall              = protocol.ErrTruncatedBuffer
	errUnableToMarshalFragmented   = fmt.Errorf("%w: unable to marshal fragmented handshakes", protocol.ErrLengthMismatch)
	errHandshakeMessageUnset       = fmt.Errorf("%w: handshake message unset", protocol.ErrMissingField)
	errHandshakeTypeMismatch       = errors.New("handshake header type does not match message type")
	errHandshakeFragmented         = errors.New("handshake is fragmented, reassemble it before decoding")
	errCookieTooLong               = fmt.Errorf("%w: cookie must not be longer then 255 bytes", protocol.ErrValueOutOfRange)
	errSessionIDTooLong            = fmt.Errorf("%w: session id must not be longer then 32 bytes", protocol.ErrValueOutOfRange)
	errCipherSuiteUnset            = fmt.Errorf("%w: server hello can not be created without a cipher suite", protocol.ErrMissingField)
	errCompressionMethodUnset      = fmt.Errorf("%w: server hello can not be created without a compression method", protocol.ErrMissingField)
	errCipherSuitesOddLength       = fmt.Errorf("%w: cipher suites length must be even", protocol.ErrInconsistentLength)
	errTooManyCipherSuites         = fmt.Errorf("%w: too many cipher suites", protocol.ErrValueOutOfRange)
	errCertificateTooLong          = fmt.Errorf("%w: certificate exceeds 2^24-1 bytes", protocol.ErrValueOutOfRange)
	errEncryptedPreMasterSecretSet = fmt.Errorf("%w: encrypted premaster secret unset", protocol.ErrMissingField)
	errEncryptedPreMasterSecretLen = fmt.Errorf("%w: encrypted premaster secret must be %d bytes", protocol.ErrLengthMismatch, EncryptedPreMasterSecretLength)
	errRandomSourceUnset           = fmt.Errorf("%w: random source unset", protocol.ErrMissingField)
	errInvalidFragmentLength       = fmt.Errorf("%w: max fragment length must be positive", protocol.ErrValueOutOfRange)
)

func errDeclaredLength(field string, declared, remaining int) error {
	return fmt.Errorf("%w: %s declares %d bytes, %d remain", protocol.ErrInconsistentLength, field, declared, remaining)
}
