package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"sync"
)

const (
	// SecretStorageKey is the single volatile storage slot holding the
	// ephemeral secret.
	SecretStorageKey = "snappymail_ephemeral_secret"
	// SecretSize is the number of random bytes behind the secret.
	SecretSize = 32
)

type secretKeeper struct {
	mu      sync.Mutex
	storage VolatileStorage
	random  io.Reader
}

// NewSecretKeeper returns a [SecretKeeper] persisting its secret in storage.
func NewSecretKeeper(storage VolatileStorage) SecretKeeper {
	return &secretKeeper{storage: storage, random: rand.Reader}
}

// GetOrCreateSecret implements [SecretKeeper]. New secrets are 32 random bytes
// encoded as base64url without padding.
func (k *secretKeeper) GetOrCreateSecret() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if secret, ok := k.storage.Get(SecretStorageKey); ok && secret != "" {
		return secret, nil
	}

	raw := make([]byte, SecretSize)
	if _, err := io.ReadFull(k.random, raw); err != nil {
		return "", fmt.Errorf("generate ephemeral secret: %w", err)
	}

	secret := base64.RawURLEncoding.EncodeToString(raw)
	k.storage.Set(SecretStorageKey, secret)
	return secret, nil
}

// ClearSecret implements [SecretKeeper].
func (k *secretKeeper) ClearSecret() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.storage.Remove(SecretStorageKey)
}
