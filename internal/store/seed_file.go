// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/models"
)

// seedFileStorage is the file-backed implementation of [SeedStorage]. The
// on-disk layout is exactly the 64-character hex seed followed by a single
// newline, at one well-known path.
type seedFileStorage struct {
	path string

	logger *logger.Logger
}

// NewSeedFileStorage constructs a [SeedStorage] persisting to path.
// The parent directory is created lazily on the first Save.
func NewSeedFileStorage(path string, logger *logger.Logger) SeedStorage {
	return &seedFileStorage{path: path, logger: logger}
}

// Save implements [SeedStorage].
//
// The write discipline is temp-file-then-rename: rename is the platform's
// atomic replace primitive, so no reader can ever observe a truncated file.
// Locking would not give that guarantee — a lock keeps writers apart but
// does nothing for a reader that opens the file mid-write.
func (s *seedFileStorage) Save(ctx context.Context, seed models.Seed) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSeedNotSaved, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrSeedNotSaved, err)
	}

	// Unique temp name per writer: racing provision calls each get their
	// own sibling file and the last rename wins.
	tmp, err := os.CreateTemp(dir, ".seed-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrSeedNotSaved, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.WriteString(string(seed) + "\n"); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %v", ErrSeedNotSaved, err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename: %v", ErrSeedNotSaved, err)
	}

	s.logger.Debug().Str("path", s.path).Msg("seed persisted")
	return nil
}

// Load implements [SeedStorage]. The content is re-validated on every read:
// a seed that was valid when written can still be corrupted out-of-band.
func (s *seedFileStorage) Load(ctx context.Context) (models.Seed, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotProvisioned
		}
		return "", fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	seed := models.Seed(strings.TrimSpace(string(raw)))
	if err := seed.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	return seed, nil
}
