// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the seed-vault server.
//
// The primary abstraction is [VaultClient], which decouples command-line
// tooling from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPVaultClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/totp-seed-vault/models"
)

// VaultClient defines transport-agnostic communication with the seed-vault
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type VaultClient interface {
	// ProvisionSeed submits a base64-encoded RSA-OAEP ciphertext to the
	// server's provisioning endpoint. Returns an error if the request fails
	// or the server responds with a non-2xx status.
	ProvisionSeed(ctx context.Context, ciphertextBase64 string) error

	// FetchCode retrieves the current TOTP code and its remaining validity
	// in seconds from the server.
	FetchCode(ctx context.Context) (models.CodeResponse, error)

	// CheckCode submits a code for verification and returns the server's
	// verdict. A wrong code is a false result, not an error.
	CheckCode(ctx context.Context, code string) (bool, error)
}
