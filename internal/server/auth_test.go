package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func newKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0600))
	return path
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newKey(t)
	other := newKey(t)

	path := writeAuthorizedKeys(t,
		"# team keys",
		"",
		"not a key at all",
		strings.TrimSpace(string(gossh.MarshalAuthorizedKey(allowed)))+" alice@laptop",
	)

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorizedMissingFile(t *testing.T) {
	assert.False(t, isKeyAuthorized(newKey(t), filepath.Join(t.TempDir(), "missing")))
}

func TestKeyFingerprint(t *testing.T) {
	key := newKey(t)

	fp := keyFingerprint(key)

	assert.True(t, strings.HasPrefix(fp, "MD5:"))
	// 16 bytes as hex pairs joined by colons
	assert.Len(t, strings.TrimPrefix(fp, "MD5:"), 16*2+15)
	assert.Equal(t, fp, keyFingerprint(key))
}

func TestNewServerRequiresFactory(t *testing.T) {
	_, err := NewServer(Options{Host: "localhost", Port: "0", HostKeyPath: filepath.Join(t.TempDir(), "key")}, nil)
	assert.Error(t, err)
}
