// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
)

// HexToBytes decodes a hexadecimal string into raw bytes. It fails with
// [ErrMalformedSeed] if the string has odd length or contains a character
// outside [0-9a-fA-F].
func HexToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSeed, err)
	}

	return b, nil
}

// BytesToBase32 encodes raw bytes with the standard base32 alphabet and no
// padding characters. The TOTP engine requires unpadded input, which is why
// padding is stripped here rather than downstream.
//
// The function is deterministic and total over any byte sequence.
func BytesToBase32(b []byte) string {
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b)
}
