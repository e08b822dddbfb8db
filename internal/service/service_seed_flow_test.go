// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/totp-seed-vault/internal/crypto"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/internal/store"
	"github.com/MKhiriev/totp-seed-vault/internal/totp"
	"github.com/MKhiriev/totp-seed-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flowKey = mustGenerateFlowKey()

func mustGenerateFlowKey() *rsa.PrivateKey {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	return key
}

// newFlowService wires the real decryptor, the real file store, and the real
// engine together — no mocks.
func newFlowService(t *testing.T) (SeedService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "seed.txt")
	storage := store.NewSeedFileStorage(path, logger.Nop())
	decryptor := crypto.NewSeedDecryptor(flowKey)

	return NewSeedService(storage, decryptor, nil, totp.DefaultWindow, logger.Nop()), path
}

// wrongCodeFor returns a 6-digit code guaranteed not to verify for seed at
// any step the configured window could reach around now.
func wrongCodeFor(t *testing.T, seed models.Seed, now time.Time) string {
	t.Helper()

	raw, err := crypto.HexToBytes(string(seed))
	require.NoError(t, err)
	secret := crypto.BytesToBase32(raw)

	inWindow := make(map[string]struct{})
	for offset := -2; offset <= 2; offset++ {
		code, _, err := totp.Generate(secret, now.Add(time.Duration(offset)*totp.Period*time.Second))
		require.NoError(t, err)
		inWindow[code] = struct{}{}
	}

	for _, candidate := range []string{"000000", "111111", "222222", "333333", "444444", "555555"} {
		if _, hit := inWindow[candidate]; !hit {
			return candidate
		}
	}

	t.Fatal("no wrong-code candidate available")
	return ""
}

// TestSeedService_ProvisionGenerateVerifyFlow drives the whole pipeline with
// real components: OAEP-encrypt a fresh seed, provision it, read a code, and
// verify it, with only the wrong code rejected.
func TestSeedService_ProvisionGenerateVerifyFlow(t *testing.T) {
	ctx := context.Background()
	svc, path := newFlowService(t)

	seed, err := crypto.GenerateSeed()
	require.NoError(t, err)

	ciphertext, err := crypto.EncryptSeed(&flowKey.PublicKey, seed)
	require.NoError(t, err)

	require.NoError(t, svc.Provision(ctx, base64.StdEncoding.EncodeToString(ciphertext)))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(seed)+"\n", string(onDisk))

	resp, err := svc.CurrentCode(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Code, 6)
	for _, r := range resp.Code {
		assert.True(t, r >= '0' && r <= '9', "code must be all digits, got %q", resp.Code)
	}
	assert.GreaterOrEqual(t, resp.ValidFor, 1)
	assert.LessOrEqual(t, resp.ValidFor, 30)

	valid, err := svc.VerifyCode(ctx, resp.Code)
	require.NoError(t, err)
	assert.True(t, valid, "freshly generated code must verify")

	valid, err = svc.VerifyCode(ctx, wrongCodeFor(t, seed, time.Now()))
	require.NoError(t, err)
	assert.False(t, valid, "wrong code must be rejected")
}

// TestSeedService_ReprovisionReplacesSeed verifies that a second provisioning
// run fully replaces the first seed: codes follow the new one.
func TestSeedService_ReprovisionReplacesSeed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newFlowService(t)

	provision := func(seed models.Seed) {
		ciphertext, err := crypto.EncryptSeed(&flowKey.PublicKey, seed)
		require.NoError(t, err)
		require.NoError(t, svc.Provision(ctx, base64.StdEncoding.EncodeToString(ciphertext)))
	}

	first, err := crypto.GenerateSeed()
	require.NoError(t, err)
	provision(first)

	second, err := crypto.GenerateSeed()
	require.NoError(t, err)
	provision(second)

	raw, err := crypto.HexToBytes(string(second))
	require.NoError(t, err)
	secret := crypto.BytesToBase32(raw)

	before := time.Now()
	resp, err := svc.CurrentCode(ctx)
	require.NoError(t, err)

	// the step may roll over between the two clock reads
	wantBefore, _, err := totp.Generate(secret, before)
	require.NoError(t, err)
	wantAfter, _, err := totp.Generate(secret, time.Now())
	require.NoError(t, err)

	assert.Contains(t, []string{wantBefore, wantAfter}, resp.Code,
		"codes must track the replacement seed")
}
