package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotProvisioned is returned when the seed file does not exist,
	// i.e. no seed has ever been successfully stored.
	ErrNotProvisioned = errors.New("seed is not provisioned")

	// ErrCorruptStore is returned when the stored content does not satisfy
	// the seed invariant on read-back. It guards against out-of-band
	// tampering or disk corruption.
	ErrCorruptStore = errors.New("stored seed is corrupt")

	// ErrSeedNotSaved is returned when an I/O failure prevents the atomic
	// save from completing. The canonical file is guaranteed to hold either
	// its prior fully-valid content or nothing at all.
	ErrSeedNotSaved = errors.New("seed was not saved")
)
