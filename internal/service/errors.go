package service

import "errors"

var (
	// ErrBadRequest covers malformed or missing caller input: an empty
	// ciphertext, undecodable base64, or an empty candidate code. It never
	// exposes internals.
	ErrBadRequest = errors.New("invalid data provided")

	// ErrKeyUnavailable is returned by Provision when the private key
	// failed to load at process start. Fatal to provisioning only; the
	// process keeps serving the other operations.
	ErrKeyUnavailable = errors.New("private key is not available")

	// ErrGenerationFailed signals an unexpected failure inside the TOTP
	// derivation. Treated as an internal fault.
	ErrGenerationFailed = errors.New("failed to generate totp code")

	// ErrVerificationFailed signals an unexpected failure inside TOTP
	// verification. Treated as an internal fault.
	ErrVerificationFailed = errors.New("failed to verify totp code")
)
