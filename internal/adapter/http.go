package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/internal/utils"
	"github.com/MKhiriev/totp-seed-vault/models"
)

// HTTPClientConfig carries the connection settings for the HTTP
// implementation of [VaultClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpVaultClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPVaultClient constructs an HTTP/REST implementation of [VaultClient].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPVaultClient(cfg HTTPClientConfig, logger *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid vault address: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpVaultClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ProvisionSeed implements [VaultClient]. It POSTs the base64 ciphertext to
// POST /decrypt-seed. Returns an error if the request fails or the server
// responds with a non-2xx status.
func (h *httpVaultClient) ProvisionSeed(ctx context.Context, ciphertextBase64 string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ProvisionRequest{EncryptedSeed: ciphertextBase64}).
		Post("/decrypt-seed")
	if err != nil {
		return fmt.Errorf("provision request: %w", err)
	}

	return mapHTTPError(resp)
}

// FetchCode implements [VaultClient]. It GETs GET /generate-2fa and decodes
// the response into a [models.CodeResponse].
func (h *httpVaultClient) FetchCode(ctx context.Context) (models.CodeResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/generate-2fa")
	if err != nil {
		return models.CodeResponse{}, fmt.Errorf("fetch code request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CodeResponse{}, err
	}

	var code models.CodeResponse
	if err = json.Unmarshal(resp.Body(), &code); err != nil {
		return models.CodeResponse{}, fmt.Errorf("decode code response: %w", err)
	}

	return code, nil
}

// CheckCode implements [VaultClient]. It POSTs the code to POST /verify-2fa
// and returns the server's verdict.
func (h *httpVaultClient) CheckCode(ctx context.Context, code string) (bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VerifyRequest{Code: code}).
		Post("/verify-2fa")
	if err != nil {
		return false, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var verdict models.VerifyResponse
	if err = json.Unmarshal(resp.Body(), &verdict); err != nil {
		return false, fmt.Errorf("decode verify response: %w", err)
	}

	return verdict.Valid, nil
}
