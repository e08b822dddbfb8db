// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/MKhiriev/totp-seed-vault/models"
)

// EncryptSeed wraps a validated seed with RSA-OAEP for provisioning. The
// OAEP parameters mirror [SeedDecryptor.DecryptSeed] exactly: SHA-256 hash,
// MGF1 over SHA-256, empty label. Used by operator tooling only.
func EncryptSeed(publicKey *rsa.PublicKey, seed models.Seed) ([]byte, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, []byte(seed), nil)
	if err != nil {
		return nil, fmt.Errorf("encrypt seed: %w", err)
	}

	return ciphertext, nil
}

// GenerateSeed draws 32 random bytes and returns them as a 64-character
// lowercase hex seed.
func GenerateSeed() (models.Seed, error) {
	raw := make([]byte, models.SeedHexLength/2)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate seed: %w", err)
	}

	return models.Seed(hex.EncodeToString(raw)), nil
}
