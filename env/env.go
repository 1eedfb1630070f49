//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the digest tools.
package env

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/chacha20"
)

// ErrEmptySeed is returned by NewPRG for an empty seed.
var ErrEmptySeed = errors.New("env: empty PRG seed")

// Config defines the global configuration of the digest tools. Config
// must not be modified after being passed to any module. It is safe
// for concurrent use by multiple modules as they do not modify it.
type Config struct {
	// Rand is the source of randomness. If nil, Seed selects a
	// deterministic stream and otherwise crypto/rand is used.
	Rand io.Reader

	// Seed keys a deterministic ChaCha20 stream for reproducible
	// randomized checks.
	Seed []byte

	// Verbose enables informational output.
	Verbose bool
}

// GetRandom returns the source of randomness for randomized checks
// such as input generation for the avalanche test.
func (config *Config) GetRandom() (io.Reader, error) {
	if config.Rand != nil {
		return config.Rand, nil
	}
	if len(config.Seed) > 0 {
		return NewPRG(config.Seed)
	}
	return rand.Reader, nil
}

// NewPRG returns a deterministic pseudo-random stream keyed by seed.
// The seed is repeated or trimmed to the 32-byte ChaCha20 key and the
// nonce is zero.
func NewPRG(seed []byte) (io.Reader, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	key := make([]byte, chacha20.KeySize)
	for i := 0; i < len(key); i++ {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, err
	}
	return &prg{
		cipher: c,
	}, nil
}

type prg struct {
	cipher *chacha20.Cipher
}

func (r *prg) Read(p []byte) (int, error) {
	clear(p)
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}
