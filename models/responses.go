package models

// StatusResponse acknowledges a successful state-changing operation.
type StatusResponse struct {
	Status string `json:"status"`
}

// CodeResponse is returned by GET /generate-2fa.
type CodeResponse struct {
	// Code is the current 6-digit TOTP code, zero-padded.
	Code string `json:"code"`

	// ValidFor is the number of seconds the code remains valid within the
	// current 30-second step. Always in [1, 30].
	ValidFor int `json:"valid_for"`
}

// VerifyResponse is returned by POST /verify-2fa.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse is the JSON error envelope returned by all endpoints on
// failure. It never carries internal detail beyond the mapped error kind.
type ErrorResponse struct {
	Error string `json:"error"`
}
