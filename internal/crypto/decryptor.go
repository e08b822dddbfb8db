// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"errors"
	"strings"

	"github.com/MKhiriev/totp-seed-vault/models"
)

// seedDecryptor is the private implementation of [SeedDecryptor]. It holds
// the process-wide RSA private key, loaded once at startup and treated as
// read-only for the process lifetime.
type seedDecryptor struct {
	privateKey *rsa.PrivateKey
}

// NewSeedDecryptor constructs a [SeedDecryptor] around an already loaded
// private key. Key loading (and the decision what to do when it fails) is
// the caller's concern — see [LoadPrivateKey].
func NewSeedDecryptor(privateKey *rsa.PrivateKey) SeedDecryptor {
	return &seedDecryptor{privateKey: privateKey}
}

// DecryptSeed implements [SeedDecryptor].
//
// The OAEP parameters (SHA-256 hash, MGF1 over SHA-256, empty label) must
// match whatever produced the ciphertext. Every decryption failure collapses
// into [ErrDecryptionFailed] without further detail — distinguishing wrong
// key from corrupted ciphertext would hand callers an oracle.
func (d *seedDecryptor) DecryptSeed(ciphertext []byte) (models.Seed, error) {
	plaintext, err := rsa.DecryptOAEP(sha256.New(), nil, d.privateKey, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	seed := models.Seed(strings.TrimSpace(string(plaintext)))
	if err := seed.Validate(); err != nil {
		// Format detail is safe to surface: it concerns the decrypted
		// content, not the key or the padding.
		return "", errors.Join(ErrInvalidSeedFormat, err)
	}

	return seed, nil
}
