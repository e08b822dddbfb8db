// Command codelogger periodically fetches the current 2FA code from a
// running seed-vault server and appends a timestamped line per code to a log
// file (or stdout). With -seed-file it reads the seed file directly and
// derives codes locally, with no server required.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/totp-seed-vault/internal/adapter"
	"github.com/MKhiriev/totp-seed-vault/internal/config"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/internal/store"
	"github.com/MKhiriev/totp-seed-vault/internal/totp"
	"github.com/MKhiriev/totp-seed-vault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	var (
		address  = flag.String("a", getenv("VAULT_ADDRESS", "http://localhost:8080"), "seed-vault server address")
		seedFile = flag.String("seed-file", "", "read the seed file directly instead of contacting the server")
		interval = flag.Duration("i", config.DefaultLogInterval, "logging interval")
		output   = flag.String("o", "", "output file (append); empty for stdout")
		once     = flag.Bool("once", false, "log the current code once and exit")
	)
	flag.Parse()

	printBuildInfo()

	log := logger.NewLogger("totp-codelogger")

	client, err := newVaultClient(*address, *seedFile, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vault client")
	}

	sink, closeSink, err := openSink(*output)
	if err != nil {
		log.Fatal().Err(err).Str("path", *output).Msg("error opening output file")
	}
	defer closeSink()

	job := workers.NewCodeLogJob(client, sink, log)

	if *once {
		workers.NewWorkers(job).Run()
		return
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	source := log.Info().Dur("interval", *interval)
	if *seedFile != "" {
		source = source.Str("seed_file", *seedFile)
	} else {
		source = source.Str("address", *address)
	}
	source.Msg("code logger started")
	job.Start(ctx, *interval)

	<-ctx.Done()
	job.Stop()
	log.Info().Msg("code logger stopped")
}

func newVaultClient(address, seedFile string, log *logger.Logger) (adapter.VaultClient, error) {
	if seedFile != "" {
		return adapter.NewLocalVaultClient(store.NewSeedFileStorage(seedFile, log), totp.DefaultWindow, log), nil
	}

	return adapter.NewHTTPVaultClient(adapter.HTTPClientConfig{
		BaseURL: address,
		Timeout: config.DefaultRequestTimeout,
	}, log)
}

func openSink(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
