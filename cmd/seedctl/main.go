// Command seedctl is the operator-side provisioning tool for the seed vault.
//
// Commands:
//
//	seedctl generate                    print a fresh random seed (hex)
//	seedctl encrypt   -pub key.pem -seed <hex>
//	seedctl provision -pub key.pem [-seed <hex>] [-a address]
//	seedctl code      [-a address]
//	seedctl verify    -code <digits> [-a address]
//
// provision without -seed generates a seed, prints it, and provisions it.
// Each command carries its own flag set, so flags follow the command name.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/totp-seed-vault/internal/adapter"
	"github.com/MKhiriev/totp-seed-vault/internal/config"
	"github.com/MKhiriev/totp-seed-vault/internal/crypto"
	"github.com/MKhiriev/totp-seed-vault/internal/logger"
	"github.com/MKhiriev/totp-seed-vault/models"
)

func main() {
	log := logger.NewLogger("seedctl")

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("seedctl failed")
	}
}

func run(args []string, out io.Writer, log *logger.Logger) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: seedctl <generate|encrypt|provision|code|verify> [flags]")
	}

	ctx := context.Background()
	command, rest := args[0], args[1:]

	switch command {
	case "generate":
		seed, err := crypto.GenerateSeed()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, seed)
		return nil

	case "encrypt":
		fs := flag.NewFlagSet("encrypt", flag.ContinueOnError)
		pubPath := fs.String("pub", "student_public.pem", "path to the vault's RSA public key (PEM)")
		seedHex := fs.String("seed", "", "seed as 64 hex characters; generated when empty")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		ciphertext, _, err := encryptSeed(*pubPath, *seedHex)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ciphertext)
		return nil

	case "provision":
		fs := flag.NewFlagSet("provision", flag.ContinueOnError)
		pubPath := fs.String("pub", "student_public.pem", "path to the vault's RSA public key (PEM)")
		seedHex := fs.String("seed", "", "seed as 64 hex characters; generated when empty")
		address := addressFlag(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}

		ciphertext, seed, err := encryptSeed(*pubPath, *seedHex)
		if err != nil {
			return err
		}

		client, err := newClient(*address, log)
		if err != nil {
			return err
		}
		if err = client.ProvisionSeed(ctx, ciphertext); err != nil {
			return err
		}

		fmt.Fprintf(out, "provisioned seed: %s\n", seed)
		return nil

	case "code":
		fs := flag.NewFlagSet("code", flag.ContinueOnError)
		address := addressFlag(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}

		client, err := newClient(*address, log)
		if err != nil {
			return err
		}

		resp, err := client.FetchCode(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s (valid for %ds)\n", resp.Code, resp.ValidFor)
		return nil

	case "verify":
		fs := flag.NewFlagSet("verify", flag.ContinueOnError)
		code := fs.String("code", "", "code to verify")
		address := addressFlag(fs)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *code == "" {
			return fmt.Errorf("verify requires -code")
		}

		client, err := newClient(*address, log)
		if err != nil {
			return err
		}

		valid, err := client.CheckCode(ctx, *code)
		if err != nil {
			return err
		}

		if valid {
			fmt.Fprintln(out, "valid")
			return nil
		}
		fmt.Fprintln(out, "invalid")
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func addressFlag(fs *flag.FlagSet) *string {
	return fs.String("a", getenv("VAULT_ADDRESS", "http://localhost:8080"), "seed-vault server address")
}

// encryptSeed resolves the seed (flag or freshly generated), encrypts it with
// the vault's public key, and returns the base64 ciphertext plus the seed.
func encryptSeed(pubPath, seedHex string) (string, models.Seed, error) {
	publicKey, err := crypto.LoadPublicKey(pubPath)
	if err != nil {
		return "", "", err
	}

	seed := models.Seed(seedHex)
	if seed == "" {
		if seed, err = crypto.GenerateSeed(); err != nil {
			return "", "", err
		}
	}

	ciphertext, err := crypto.EncryptSeed(publicKey, seed)
	if err != nil {
		return "", "", err
	}

	return base64.StdEncoding.EncodeToString(ciphertext), seed, nil
}

func newClient(address string, log *logger.Logger) (adapter.VaultClient, error) {
	return adapter.NewHTTPVaultClient(adapter.HTTPClientConfig{
		BaseURL: address,
		Timeout: config.DefaultRequestTimeout,
	}, log)
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
