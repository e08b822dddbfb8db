// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/totp-seed-vault/internal/crypto"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/internal/store"
	"github.com/MKhiriev/totp-seed-vault/internal/totp"
	"github.com/MKhiriev/totp-seed-vault/models"
)

type seedService struct {
	decryptor crypto.SeedDecryptor
	keyErr    error // recorded key-load failure; nil when decryptor is usable

	seedStorage store.SeedStorage
	window      uint

	now func() time.Time

	logger *logger.Logger
}

// NewSeedService constructs the [SeedService] facade.
//
// decryptor may be nil when the private key failed to load at startup;
// keyErr then carries the recorded failure. The service stays up: only
// Provision is affected, failing with [ErrKeyUnavailable] on every call.
func NewSeedService(seedStorage store.SeedStorage, decryptor crypto.SeedDecryptor, keyErr error, window uint, logger *logger.Logger) SeedService {
	return &seedService{
		decryptor:   decryptor,
		keyErr:      keyErr,
		seedStorage: seedStorage,
		window:      window,
		now:         time.Now,
		logger:      logger,
	}
}

// Provision implements [SeedService]: base64 decode → decrypt → atomic save.
// The ciphertext is consumed exactly once and never stored.
func (s *seedService) Provision(ctx context.Context, ciphertextBase64 string) error {
	ciphertextBase64 = strings.TrimSpace(ciphertextBase64)
	if ciphertextBase64 == "" {
		return fmt.Errorf("%w: missing encrypted seed", ErrBadRequest)
	}

	if s.decryptor == nil {
		// recorded load failure stays in the logs; the caller only learns
		// that the key is unavailable
		s.logger.Error().Err(s.keyErr).Msg("provisioning rejected: private key not loaded")
		return ErrKeyUnavailable
	}

	ciphertext, err := base64.StdEncoding.DecodeString(ciphertextBase64)
	if err != nil {
		return fmt.Errorf("%w: invalid base64", ErrBadRequest)
	}

	seed, err := s.decryptor.DecryptSeed(ciphertext)
	if err != nil {
		return err
	}

	if err := s.seedStorage.Save(ctx, seed); err != nil {
		return err
	}

	s.logger.Info().Msg("seed provisioned")
	return nil
}

// CurrentCode implements [SeedService].
func (s *seedService) CurrentCode(ctx context.Context) (models.CodeResponse, error) {
	secret, err := s.loadSecret(ctx, ErrGenerationFailed)
	if err != nil {
		return models.CodeResponse{}, err
	}

	code, validFor, err := totp.Generate(secret, s.now())
	if err != nil {
		return models.CodeResponse{}, errors.Join(ErrGenerationFailed, err)
	}

	return models.CodeResponse{Code: code, ValidFor: validFor}, nil
}

// VerifyCode implements [SeedService].
func (s *seedService) VerifyCode(ctx context.Context, code string) (bool, error) {
	if strings.TrimSpace(code) == "" {
		return false, fmt.Errorf("%w: missing code", ErrBadRequest)
	}

	secret, err := s.loadSecret(ctx, ErrVerificationFailed)
	if err != nil {
		return false, err
	}

	valid, err := totp.Verify(secret, code, s.window, s.now())
	if err != nil {
		return false, errors.Join(ErrVerificationFailed, err)
	}

	return valid, nil
}

// loadSecret reads the stored seed and converts it to the unpadded base32
// form the TOTP engine consumes. Store errors pass through unchanged; a
// codec failure on an already validated seed is an internal fault and is
// wrapped into the provided sentinel.
func (s *seedService) loadSecret(ctx context.Context, internalErr error) (string, error) {
	seed, err := s.seedStorage.Load(ctx)
	if err != nil {
		return "", err
	}

	raw, err := crypto.HexToBytes(string(seed))
	if err != nil {
		return "", errors.Join(internalErr, err)
	}

	return crypto.BytesToBase32(raw), nil
}
