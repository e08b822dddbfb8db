package store

import (
	"github.com/MKhiriev/totp-seed-vault/internal/config"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
)

type Storages struct {
	SeedStorage SeedStorage
}

func NewStorages(cfg config.Storage, logger *logger.Logger) *Storages {
	return &Storages{
		SeedStorage: NewSeedFileStorage(cfg.SeedPath, logger),
	}
}
