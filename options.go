// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package dtls

import (
	"github.com/dtlscodec/dtls/pkg/protocol/handshake"
	"github.com/dtlscodec/dtls/pkg/protocol/recordlayer"
	"github.com/pion/logging"
)

const (
	defaultMTU = 1200 // bytes

	// 2 megabytes.
	defaultFragmentBufferMaxSize  = 2000000
	defaultFragmentBufferMaxCount = 1000
)

// Option configures a Receiver, Sender or FragmentBuffer. Options that do
// not apply to a type are accepted and ignored by it.
type Option interface {
	apply(*config) error
}

type optionFunc func(*config) error

func (o optionFunc) apply(c *config) error { return o(c) }

type config struct {
	loggerFactory          logging.LoggerFactory
	replayProtectionWindow uint
	mtu                    int
	maxFragmentLength      int // 0 derives it from mtu
	fragmentBufferMaxSize  int
	fragmentBufferMaxCount int
}

// applyDefaults applies default values to the config.
func (c *config) applyDefaults() {
	c.loggerFactory = logging.NewDefaultLoggerFactory()
	c.mtu = defaultMTU
	c.fragmentBufferMaxSize = defaultFragmentBufferMaxSize
	c.fragmentBufferMaxCount = defaultFragmentBufferMaxCount
}

// fragmentLength is the largest handshake fragment body. Unless set
// explicitly it keeps one fragment per record inside the MTU.
func (c *config) fragmentLength() int {
	if c.maxFragmentLength > 0 {
		return c.maxFragmentLength
	}

	return max(c.mtu-recordlayer.HeaderSize-handshake.HeaderLength, 1)
}

func buildConfig(opts ...Option) (*config, error) {
	cfg := &config{}
	cfg.applyDefaults()

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithLoggerFactory sets the logger factory for creating loggers.
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return optionFunc(func(c *config) error {
		if factory == nil {
			return errNilLoggerFactory
		}
		c.loggerFactory = factory

		return nil
	})
}

// WithReplayProtectionWindow enables replay detection on received records
// with a sliding window of the given number of sequence numbers per epoch.
// Replay detection is off unless this option is given.
func WithReplayProtectionWindow(window int) Option {
	return optionFunc(func(c *config) error {
		if window <= 0 {
			return errInvalidReplayProtectionWindow
		}
		c.replayProtectionWindow = uint(window)

		return nil
	})
}

// WithMTU sets the maximum transmission unit. A Sender starts a new
// datagram rather than grow one past it.
// Returns an error if the MTU is not positive.
func WithMTU(mtu int) Option {
	return optionFunc(func(c *config) error {
		if mtu <= 0 {
			return errInvalidMTU
		}
		c.mtu = mtu

		return nil
	})
}

// WithMaxFragmentLength sets the largest handshake body a Sender puts in
// one fragment. It defaults to what fits in one record within the MTU.
func WithMaxFragmentLength(length int) Option {
	return optionFunc(func(c *config) error {
		if length <= 0 {
			return errInvalidMaxFragmentLength
		}
		c.maxFragmentLength = length

		return nil
	})
}

// WithFragmentBufferLimits caps the bytes and the number of distinct
// chunks held for reassembly across all pending messages.
func WithFragmentBufferLimits(maxSize, maxCount int) Option {
	return optionFunc(func(c *config) error {
		if maxSize <= 0 || maxCount <= 0 {
			return errInvalidFragmentBufferLimits
		}
		c.fragmentBufferMaxSize = maxSize
		c.fragmentBufferMaxCount = maxCount

		return nil
	})
}
