// Package secure encrypts partner contact info at rest using fernet tokens.
// Balances and splits stay queryable; only the free-text contact field is
// sensitive enough to warrant encryption.
package secure

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Vault encrypts and decrypts strings with a fernet key. A nil Vault is valid
// and passes values through unchanged, so callers need no key-configured
// branching.
type Vault struct {
	keys []*fernet.Key
}

// NewVault creates a Vault from a base64url-encoded fernet key. An empty key
// returns a nil Vault (encryption disabled).
func NewVault(encodedKey string) (*Vault, error) {
	if encodedKey == "" {
		return nil, nil
	}

	keys, err := fernet.DecodeKeys(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fernet key: %w", err)
	}

	return &Vault{keys: keys}, nil
}

// GenerateKey produces a fresh encoded fernet key, used by tests and setup
// tooling.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate fernet key: %w", err)
	}
	return key.Encode(), nil
}

// Encrypt returns the fernet token for the given plaintext. Empty input and
// nil vaults pass through unchanged.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	if v == nil || plaintext == "" {
		return plaintext, nil
	}

	token, err := fernet.EncryptAndSign([]byte(plaintext), v.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	return string(token), nil
}

// Decrypt reverses Encrypt. Tokens never expire; the TTL guards tampering,
// not freshness. Values that do not verify as fernet tokens are returned
// as-is, so rows written before a key was configured stay readable.
func (v *Vault) Decrypt(stored string) string {
	if v == nil || stored == "" {
		return stored
	}

	msg := fernet.VerifyAndDecrypt([]byte(stored), 0, v.keys)
	if msg == nil {
		return stored
	}
	return string(msg)
}
