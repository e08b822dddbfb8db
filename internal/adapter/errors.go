package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNotSupported is returned by client implementations that cannot
	// perform the requested operation (e.g. provisioning without the
	// vault's private key).
	ErrNotSupported = errors.New("operation not supported")
)
