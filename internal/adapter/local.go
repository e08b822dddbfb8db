// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/totp-seed-vault/internal/crypto"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/internal/store"
	"github.com/MKhiriev/totp-seed-vault/internal/totp"
	"github.com/MKhiriev/totp-seed-vault/models"
)

type localVaultClient struct {
	storage store.SeedStorage
	window  uint

	now func() time.Time

	logger *logger.Logger
}

// NewLocalVaultClient constructs a [VaultClient] that derives codes straight
// from the seed file, with no server involved. Provisioning is not available:
// decrypting a seed requires the vault's private key, which only the server
// holds.
func NewLocalVaultClient(storage store.SeedStorage, window uint, logger *logger.Logger) VaultClient {
	return &localVaultClient{
		storage: storage,
		window:  window,
		now:     time.Now,
		logger:  logger,
	}
}

// ProvisionSeed implements [VaultClient]. Always fails with [ErrNotSupported].
func (l *localVaultClient) ProvisionSeed(_ context.Context, _ string) error {
	return fmt.Errorf("%w: provisioning requires the vault server", ErrNotSupported)
}

// FetchCode implements [VaultClient] by reading the seed file directly.
func (l *localVaultClient) FetchCode(ctx context.Context) (models.CodeResponse, error) {
	secret, err := l.secret(ctx)
	if err != nil {
		return models.CodeResponse{}, err
	}

	code, validFor, err := totp.Generate(secret, l.now())
	if err != nil {
		return models.CodeResponse{}, err
	}

	return models.CodeResponse{Code: code, ValidFor: validFor}, nil
}

// CheckCode implements [VaultClient] against the locally stored seed.
func (l *localVaultClient) CheckCode(ctx context.Context, code string) (bool, error) {
	secret, err := l.secret(ctx)
	if err != nil {
		return false, err
	}

	return totp.Verify(secret, code, l.window, l.now())
}

func (l *localVaultClient) secret(ctx context.Context) (string, error) {
	seed, err := l.storage.Load(ctx)
	if err != nil {
		return "", err
	}

	raw, err := crypto.HexToBytes(string(seed))
	if err != nil {
		return "", err
	}

	return crypto.BytesToBase32(raw), nil
}
