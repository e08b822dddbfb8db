package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePEM(t *testing.T, blockType string, der []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.pem")
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadPrivateKey_PKCS1(t *testing.T) {
	path := writePEM(t, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(testKey))

	key, err := LoadPrivateKey(path)
	require.NoError(t, err)
	assert.True(t, key.Equal(testKey))
}

func TestLoadPrivateKey_PKCS8(t *testing.T) {
	der, err := x509.MarshalPKCS8PrivateKey(testKey)
	require.NoError(t, err)
	path := writePEM(t, "PRIVATE KEY", der)

	key, err := LoadPrivateKey(path)
	require.NoError(t, err)
	assert.True(t, key.Equal(testKey))
}

func TestLoadPrivateKey_MissingFile(t *testing.T) {
	_, err := LoadPrivateKey(filepath.Join(t.TempDir(), "absent.pem"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyFile)
}

func TestLoadPrivateKey_NotPEM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a pem file"), 0o600))

	_, err := LoadPrivateKey(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyFile)
}

func TestLoadPrivateKey_UnexpectedBlockType(t *testing.T) {
	path := writePEM(t, "CERTIFICATE", []byte{0x01, 0x02})

	_, err := LoadPrivateKey(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyFile)
}

func TestLoadPublicKey_PKIX(t *testing.T) {
	der, err := x509.MarshalPKIXPublicKey(&testKey.PublicKey)
	require.NoError(t, err)
	path := writePEM(t, "PUBLIC KEY", der)

	pub, err := LoadPublicKey(path)
	require.NoError(t, err)
	assert.True(t, pub.Equal(&testKey.PublicKey))
}

func TestLoadPublicKey_NotRSA(t *testing.T) {
	// a non-RSA key inside a PUBLIC KEY block must be rejected
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	path := writePEM(t, "PUBLIC KEY", der)

	_, err = LoadPublicKey(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKeyFile)
}
