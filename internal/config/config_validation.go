// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults are merged
// before validation, so an error here means a source explicitly supplied an
// unusable value.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.PrivateKeyPath == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.SeedPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.LogInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
