// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dtls

import (
	"errors"
	"fmt"

	"github.com/dtlscodec/dtls/pkg/protocol"
)

// Typed errors.
var (
	//nolint:err113
	errFragmentBufferOverflow = errors.New("fragment buffer overflow")
	errFragmentUnset          = fmt.Errorf("%w: fragment unset", protocol.ErrMissingField)
	errFragmentEpochMismatch  = fmt.Errorf("%w: fragment epoch differs from the message's first fragment", protocol.ErrInconsistentFragment)
	errFragmentHeaderMismatch = fmt.Errorf("%w: fragment header conflicts with earlier fragments", protocol.ErrInconsistentFragment)
	errEpochOverflow          = fmt.Errorf("%w: epoch exhausted", protocol.ErrValueOutOfRange)

	//nolint:err113
	errInvalidReplayProtectionWindow = errors.New("replay protection window must be positive")
	//nolint:err113
	errInvalidMTU = errors.New("mtu must be positive")
	//nolint:err113
	errInvalidMaxFragmentLength = errors.New("max fragment length must be positive")
	//nolint:err113
	errInvalidFragmentBufferLimits = errors.New("fragment buffer limits must be positive")
	//nolint:err113
	errNilLoggerFactory = errors.New("logger factory must not be nil")
)
