package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDecryptionFailed is returned for any RSA-OAEP decryption failure:
	// wrong key, wrong padding parameters, or corrupted ciphertext. The
	// cause is deliberately not distinguished so that callers (and,
	// transitively, remote clients) cannot use the error as a padding or
	// key oracle.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidSeedFormat is returned when a successfully decrypted
	// plaintext does not satisfy the seed invariant (64 hex characters).
	// Unlike ErrDecryptionFailed it carries the specific reason, which is
	// safe to expose because it concerns post-decryption format, not key
	// material.
	ErrInvalidSeedFormat = errors.New("invalid seed format")

	// ErrMalformedSeed is returned by the codec when a hex string cannot be
	// decoded into bytes (odd length or non-hex character).
	ErrMalformedSeed = errors.New("malformed hex seed")

	// ErrInvalidKeyFile is returned when the private key file cannot be
	// read or does not contain a parseable PEM-encoded RSA key.
	ErrInvalidKeyFile = errors.New("invalid private key file")
)
