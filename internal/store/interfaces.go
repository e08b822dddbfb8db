package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/totp-seed-vault/models"
)

// SeedStorage is a durable, single-slot store for the provisioned seed.
// The process holds exactly one secret; there is no versioning and no
// history — a subsequent Save overwrites the previous seed entirely.
type SeedStorage interface {
	// Save persists the seed atomically: the full content is written to a
	// temporary sibling file and then moved onto the canonical path with a
	// single rename. A concurrent reader observes either the fully-old or
	// the fully-new content, never a mix. Concurrent writers race; the
	// last rename wins.
	Save(ctx context.Context, seed models.Seed) error

	// Load reads the seed back and re-validates it. It returns
	// [ErrNotProvisioned] if the canonical path does not exist and
	// [ErrCorruptStore] if the content fails the seed invariant.
	Load(ctx context.Context) (models.Seed, error)
}
