// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/totp-seed-vault/internal/crypto"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/internal/service"
	"github.com/MKhiriev/totp-seed-vault/internal/store"
	"github.com/MKhiriev/totp-seed-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock SeedService
// ─────────────────────────────────────────────

// mockSeedService implements service.SeedService for unit tests.
// Each method field can be overridden per test case.
type mockSeedService struct {
	provisionFn   func(ctx context.Context, ciphertextBase64 string) error
	currentCodeFn func(ctx context.Context) (models.CodeResponse, error)
	verifyCodeFn  func(ctx context.Context, code string) (bool, error)
}

func (m *mockSeedService) Provision(ctx context.Context, ciphertextBase64 string) error {
	return m.provisionFn(ctx, ciphertextBase64)
}

func (m *mockSeedService) CurrentCode(ctx context.Context) (models.CodeResponse, error) {
	return m.currentCodeFn(ctx)
}

func (m *mockSeedService) VerifyCode(ctx context.Context, code string) (bool, error) {
	return m.verifyCodeFn(ctx, code)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithSeed builds a Handler with the given SeedService mock.
func newHandlerWithSeed(t *testing.T, seed service.SeedService) *Handler {
	t.Helper()
	svcs := &service.Services{
		SeedService: seed,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises a value to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// decodeError extracts the error envelope from a recorded response.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ─────────────────────────────────────────────
// decryptSeed
// ─────────────────────────────────────────────

// TestDecryptSeed_Success verifies that a valid provisioning request results
// in 200 OK with the {"status":"ok"} body and that the ciphertext reaches the
// service untouched.
func TestDecryptSeed_Success(t *testing.T) {
	const ciphertext = "QmFzZTY0QmxvYg=="

	var got string
	seed := &mockSeedService{
		provisionFn: func(_ context.Context, c string) error {
			got = c
			return nil
		},
	}

	h := newHandlerWithSeed(t, seed)
	body := jsonBody(t, models.ProvisionRequest{EncryptedSeed: ciphertext})
	req := httptest.NewRequest(http.MethodPost, "/decrypt-seed", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.decryptSeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, ciphertext, got)
}

// TestDecryptSeed_InvalidJSON verifies that a malformed request body results
// in 400 Bad Request before the service is reached.
func TestDecryptSeed_InvalidJSON(t *testing.T) {
	h := newHandlerWithSeed(t, &mockSeedService{})

	req := httptest.NewRequest(http.MethodPost, "/decrypt-seed", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.decryptSeed(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeError(t, rec).Error)
}

// TestDecryptSeed_ErrorMapping verifies the HTTP status and public message
// for every provisioning failure the service can report.
func TestDecryptSeed_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty or undecodable payload",
			serviceErr: service.ErrBadRequest,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name:       "plaintext fails seed validation",
			serviceErr: errors.Join(crypto.ErrInvalidSeedFormat, models.ErrSeedLength),
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid seed format",
		},
		{
			name:       "decryption failed",
			serviceErr: crypto.ErrDecryptionFailed,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:       "private key unavailable",
			serviceErr: service.ErrKeyUnavailable,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:       "persistence failed",
			serviceErr: store.ErrSeedNotSaved,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := &mockSeedService{
				provisionFn: func(_ context.Context, _ string) error {
					return tt.serviceErr
				},
			}

			h := newHandlerWithSeed(t, seed)
			body := jsonBody(t, models.ProvisionRequest{EncryptedSeed: "Zm9v"})
			req := httptest.NewRequest(http.MethodPost, "/decrypt-seed", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.decryptSeed(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}

// ─────────────────────────────────────────────
// generateCode
// ─────────────────────────────────────────────

// TestGenerateCode_Success verifies that the code and its remaining validity
// are returned verbatim from the service.
func TestGenerateCode_Success(t *testing.T) {
	seed := &mockSeedService{
		currentCodeFn: func(_ context.Context) (models.CodeResponse, error) {
			return models.CodeResponse{Code: "287082", ValidFor: 17}, nil
		},
	}

	h := newHandlerWithSeed(t, seed)
	req := httptest.NewRequest(http.MethodGet, "/generate-2fa", nil)
	rec := httptest.NewRecorder()

	h.generateCode(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"code":"287082","valid_for":17}`, rec.Body.String())
}

// TestGenerateCode_ErrorMapping verifies that both the missing-seed and
// corrupt-store cases surface as an undifferentiated 500.
func TestGenerateCode_ErrorMapping(t *testing.T) {
	for _, serviceErr := range []error{store.ErrNotProvisioned, store.ErrCorruptStore, service.ErrGenerationFailed} {
		t.Run(serviceErr.Error(), func(t *testing.T) {
			seed := &mockSeedService{
				currentCodeFn: func(_ context.Context) (models.CodeResponse, error) {
					return models.CodeResponse{}, serviceErr
				},
			}

			h := newHandlerWithSeed(t, seed)
			req := httptest.NewRequest(http.MethodGet, "/generate-2fa", nil)
			rec := httptest.NewRecorder()

			h.generateCode(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "internal server error", decodeError(t, rec).Error)
		})
	}
}

// ─────────────────────────────────────────────
// verifyCode
// ─────────────────────────────────────────────

// TestVerifyCode_Outcome verifies that both verification outcomes are plain
// 200 responses; a wrong code is a result, not an error.
func TestVerifyCode_Outcome(t *testing.T) {
	for _, valid := range []bool{true, false} {
		seed := &mockSeedService{
			verifyCodeFn: func(_ context.Context, code string) (bool, error) {
				assert.Equal(t, "287082", code)
				return valid, nil
			},
		}

		h := newHandlerWithSeed(t, seed)
		body := jsonBody(t, models.VerifyRequest{Code: "287082"})
		req := httptest.NewRequest(http.MethodPost, "/verify-2fa", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.verifyCode(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.VerifyResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, valid, resp.Valid)
	}
}

// TestVerifyCode_InvalidJSON verifies that a malformed request body results
// in 400 Bad Request before the service is reached.
func TestVerifyCode_InvalidJSON(t *testing.T) {
	h := newHandlerWithSeed(t, &mockSeedService{})

	req := httptest.NewRequest(http.MethodPost, "/verify-2fa", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.verifyCode(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeError(t, rec).Error)
}

// TestVerifyCode_ErrorMapping verifies the status mapping for verification
// failures.
func TestVerifyCode_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "empty code",
			serviceErr: service.ErrBadRequest,
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid data provided",
		},
		{
			name:       "no seed provisioned",
			serviceErr: store.ErrNotProvisioned,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:       "verification engine failure",
			serviceErr: service.ErrVerificationFailed,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := &mockSeedService{
				verifyCodeFn: func(_ context.Context, _ string) (bool, error) {
					return false, tt.serviceErr
				},
			}

			h := newHandlerWithSeed(t, seed)
			body := jsonBody(t, models.VerifyRequest{Code: "123456"})
			req := httptest.NewRequest(http.MethodPost, "/verify-2fa", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.verifyCode(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeError(t, rec).Error)
		})
	}
}
