package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/totp-seed-vault/internal/crypto"
	"github.com/MKhiriev/totp-seed-vault/internal/service"
	"github.com/MKhiriev/totp-seed-vault/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrBadRequest:       http.StatusBadRequest,
	crypto.ErrInvalidSeedFormat: http.StatusBadRequest,

	service.ErrKeyUnavailable:     http.StatusInternalServerError,
	service.ErrGenerationFailed:   http.StatusInternalServerError,
	service.ErrVerificationFailed: http.StatusInternalServerError,

	crypto.ErrDecryptionFailed: http.StatusInternalServerError,

	store.ErrNotProvisioned: http.StatusInternalServerError,
	store.ErrCorruptStore:   http.StatusInternalServerError,
	store.ErrSeedNotSaved:   http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage picks the response body text for a failed request. Bad
// requests name their cause; every 500 collapses into the same generic
// message regardless of what actually failed inside.
func publicMessage(err error, status int) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}

	switch {
	case errors.Is(err, crypto.ErrInvalidSeedFormat):
		return "invalid seed format"
	case errors.Is(err, service.ErrBadRequest):
		return "invalid data provided"
	default:
		return http.StatusText(status)
	}
}
