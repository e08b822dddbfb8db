// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default configuration values applied when no other source provides one.
const (
	DefaultPrivateKeyPath = "student_private.pem"
	DefaultSeedPath       = "/data/seed.txt"
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 15 * time.Second
	DefaultLogInterval    = time.Minute
	DefaultVerifyWindow   = 1
)

// StructuredConfig is the top-level configuration container for the
// totp-seed-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the private key location and
	// the TOTP verification window.
	App App

	// Storage holds configuration for the seed file store.
	Storage Storage

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for the periodic code-logging job.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
//
// App and Storage carry no envPrefix on purpose: PRIVATE_KEY_PATH and
// SEED_PATH are the variable names the deployment environment has always
// used for this service.
type App struct {
	// PrivateKeyPath is the path to the PEM-encoded RSA private key used
	// to decrypt provisioned seeds. Loaded once at process start.
	// Env: PRIVATE_KEY_PATH
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`

	// VerifyWindow is the number of adjacent 30-second steps tolerated on
	// either side of the current step when verifying a submitted code.
	// Env: VERIFY_WINDOW
	VerifyWindow uint `env:"VERIFY_WINDOW"`
}

// Storage holds file-system settings for the seed store.
type Storage struct {
	// SeedPath is the canonical path of the single-slot seed file.
	// Env: SEED_PATH
	SeedPath string `env:"SEED_PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the periodic code-logging job.
type Workers struct {
	// LogInterval is how often the codelogger binary emits the current
	// code (e.g. "1m").
	// Env: WORKERS_LOG_INTERVAL
	LogInterval time.Duration `env:"LOG_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PrivateKeyPath: DefaultPrivateKeyPath,
			VerifyWindow:   DefaultVerifyWindow,
		},
		Storage: Storage{
			SeedPath: DefaultSeedPath,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			LogInterval: DefaultLogInterval,
		},
	}
}
