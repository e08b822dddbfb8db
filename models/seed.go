// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// SeedHexLength is the canonical length of a seed in hexadecimal form:
// 32 bytes of secret material encoded as 64 hex characters.
const SeedHexLength = 64

// Validation errors shared by every component that checks the seed format
// (post-decrypt validation and store read-back). Callers match them with
// [errors.Is]; both wrap the specific reason into their message.
var (
	// ErrSeedLength is returned when the seed is not exactly 64 characters.
	ErrSeedLength = errors.New("invalid seed length")

	// ErrSeedCharset is returned when the seed contains a character outside
	// [0-9a-fA-F].
	ErrSeedCharset = errors.New("seed contains non-hex characters")
)

// Seed is a 32-byte TOTP secret in its canonical 64-character hexadecimal
// representation. Case is preserved as received; validation is
// case-insensitive.
//
// A Seed is created exactly once per provisioning call by successful
// decryption and is owned by the seed store afterwards. No component keeps a
// copy beyond the lifetime of a single call.
type Seed string

// Validate checks the seed invariant: length exactly [SeedHexLength] and
// every character a valid hex digit. The returned error wraps either
// [ErrSeedLength] or [ErrSeedCharset] so callers can distinguish the reason.
func (s Seed) Validate() error {
	if len(s) != SeedHexLength {
		return fmt.Errorf("%w: expected %d characters, got %d", ErrSeedLength, SeedHexLength, len(s))
	}

	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return fmt.Errorf("%w: position %d", ErrSeedCharset, i)
		}
	}

	return nil
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
