// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package totp derives and verifies time-based one-time passwords from an
// unpadded base32 secret. Both operations are pure functions of
// (secret, time, window): no internal state, no caching.
package totp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp"
	ptotp "github.com/pquerna/otp/totp"
)

const (
	// Period is the TOTP time step in seconds (RFC 6238 standard).
	Period = 30

	// DefaultWindow is the number of adjacent time steps tolerated on
	// either side of the current step during verification.
	DefaultWindow = 1

	digits = otp.DigitsSix
)

// validateOpts returns the fixed algorithm parameters: 30-second period,
// 6 digits, HMAC-SHA1. They must match the issuer side exactly.
func validateOpts(window uint) ptotp.ValidateOpts {
	return ptotp.ValidateOpts{
		Period:    Period,
		Skew:      window,
		Digits:    digits,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// Generate computes the 6-digit zero-padded code for the time step
// containing now and the number of seconds the code remains valid within
// that step (always in [1, Period]).
//
// secret is the unpadded base32 form of the seed bytes.
func Generate(secret string, now time.Time) (code string, validFor int, err error) {
	code, err = ptotp.GenerateCodeCustom(secret, now, validateOpts(0))
	if err != nil {
		return "", 0, fmt.Errorf("generate totp code: %w", err)
	}

	validFor = Period - int(now.Unix()%Period)
	return code, validFor, nil
}

// Verify recomputes the code for every counter in [current-window,
// current+window] and reports whether the submitted code matches any of
// them. This tolerates a clock skew of up to window steps (±30s per unit)
// between issuer and verifier.
//
// The submitted code is normalized to the zero-padded 6-digit width before
// comparison, so "42" and "000042" are the same candidate. A code of the
// wrong shape is simply not valid; only an unusable secret produces an
// error.
//
// Note: there is no replay protection — the same code verifies repeatedly
// within its window. Known limitation, kept deliberately.
func Verify(secret, code string, window uint, now time.Time) (bool, error) {
	code = normalizeCode(code)

	valid, err := ptotp.ValidateCustom(code, secret, now, validateOpts(window))
	if err != nil {
		if errors.Is(err, otp.ErrValidateInputInvalidLength) {
			return false, nil
		}
		return false, fmt.Errorf("verify totp code: %w", err)
	}

	return valid, nil
}

// normalizeCode trims whitespace and left-pads short all-digit candidates
// with zeros to the standard 6-digit width.
func normalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if len(code) >= digits.Length() || !isDigits(code) {
		return code
	}

	return strings.Repeat("0", digits.Length()-len(code)) + code
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
