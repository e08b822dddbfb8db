package service

import (
	"github.com/MKhiriev/totp-seed-vault/internal/config"
	"github.com/MKhiriev/totp-seed-vault/internal/crypto"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/internal/store"
)

type Services struct {
	SeedService SeedService
}

// NewServices wires the service layer. The private key is loaded exactly
// once here; a failure is recorded instead of crashing the process, so the
// code-serving operations keep working while provisioning reports
// [ErrKeyUnavailable].
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	var decryptor crypto.SeedDecryptor

	key, keyErr := crypto.LoadPrivateKey(cfg.PrivateKeyPath)
	if keyErr != nil {
		logger.Error().Err(keyErr).Str("path", cfg.PrivateKeyPath).Msg("private key not loaded; provisioning disabled")
	} else {
		decryptor = crypto.NewSeedDecryptor(key)
	}

	return &Services{
		SeedService: NewSeedService(storages.SeedStorage, decryptor, keyErr, cfg.VerifyWindow, logger),
	}
}
