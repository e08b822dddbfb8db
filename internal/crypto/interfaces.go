package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/totp-seed-vault/models"

// SeedDecryptor turns an opaque RSA-OAEP ciphertext into a validated seed.
// It knows nothing about transport, persistence, or TOTP derivation; its
// single job is asymmetric decryption plus strict format validation.
//
// Implementations are pure transformations: persisting the resulting seed is
// the caller's responsibility.
type SeedDecryptor interface {
	// DecryptSeed decrypts ciphertext with the process private key using
	// RSA-OAEP (SHA-256 for both the OAEP hash and MGF1, empty label),
	// interprets the plaintext as UTF-8, trims surrounding whitespace, and
	// validates the result against the seed invariant.
	//
	// Any cryptographic failure is reported as the undifferentiated
	// [ErrDecryptionFailed]; format violations are reported as
	// [ErrInvalidSeedFormat] with the specific reason attached.
	DecryptSeed(ciphertext []byte) (models.Seed, error)
}
