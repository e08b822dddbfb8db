package service

import (
	"context"

	"github.com/MKhiriev/totp-seed-vault/models"
)

// SeedService is the boundary contract consumed by the transport layer.
// Every internal failure is mapped to the closed error taxonomy formed by
// this package's sentinels plus those of the crypto and store packages;
// no raw error detail or key material crosses this boundary.
type SeedService interface {
	// Provision decodes the base64 ciphertext, decrypts it into a seed,
	// and persists it atomically. An empty input is rejected immediately
	// with [ErrBadRequest]. The previous stored seed (if any) survives any
	// failure untouched.
	Provision(ctx context.Context, ciphertextBase64 string) error

	// CurrentCode loads the stored seed and derives the TOTP code for the
	// current wall-clock time step.
	CurrentCode(ctx context.Context) (models.CodeResponse, error)

	// VerifyCode checks a caller-submitted code against the current step
	// with the configured skew window. An empty code is rejected with
	// [ErrBadRequest]. Returns the verification outcome; false is a
	// result, not an error.
	VerifyCode(ctx context.Context, code string) (bool, error)
}
