// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/MKhiriev/go-ephemeral-sessions/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the PBKDF2 salt generated per Encrypt call.
	SaltSize = 16
	// NonceSize is the AES-GCM nonce length.
	NonceSize = 12
	// KeySize selects AES-256.
	KeySize = 32
	// DefaultIterations is the PBKDF2 work factor used when none is configured.
	DefaultIterations = 100_000
)

type sessionCipher struct {
	iterations int
	random     io.Reader
}

// NewSessionCipher returns a [SessionCipher] that derives keys with the given
// number of PBKDF2 iterations. A non-positive value selects
// [DefaultIterations].
func NewSessionCipher(iterations int) SessionCipher {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &sessionCipher{iterations: iterations, random: rand.Reader}
}

// Encrypt implements [SessionCipher]. The returned fields are standard
// base64: Ciphertext carries the sealed JSON followed by the 16-byte tag.
func (c *sessionCipher) Encrypt(secret string, payload any) (models.EncryptedPayload, error) {
	if secret == "" {
		return models.EncryptedPayload{}, ErrEmptySecret
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("marshal payload: %w", err)
	}

	salt := make([]byte, SaltSize)
	if _, err = io.ReadFull(c.random, salt); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, NonceSize)
	if _, err = io.ReadFull(c.random, nonce); err != nil {
		return models.EncryptedPayload{}, fmt.Errorf("generate nonce: %w", err)
	}

	gcm, err := c.aead(secret, salt)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	return models.EncryptedPayload{
		Ciphertext: base64.StdEncoding.EncodeToString(gcm.Seal(nil, nonce, plaintext, nil)),
		IV:         base64.StdEncoding.EncodeToString(nonce),
		Salt:       base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// Decrypt implements [SessionCipher].
func (c *sessionCipher) Decrypt(secret, ciphertext, iv, salt string, target any) error {
	if secret == "" {
		return fmt.Errorf("%w: %w", ErrCrypto, ErrEmptySecret)
	}

	rawSalt, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(rawSalt) != SaltSize {
		return fmt.Errorf("%w: bad salt", ErrCrypto)
	}
	nonce, err := base64.StdEncoding.DecodeString(iv)
	if err != nil || len(nonce) != NonceSize {
		return fmt.Errorf("%w: bad iv", ErrCrypto)
	}
	sealed, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return fmt.Errorf("%w: bad ciphertext encoding", ErrCrypto)
	}

	gcm, err := c.aead(secret, rawSalt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCrypto, err)
	}
	if len(sealed) < gcm.Overhead() {
		return fmt.Errorf("%w: ciphertext too short", ErrCrypto)
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return fmt.Errorf("%w: authentication failed", ErrCrypto)
	}

	// Decode into a fresh value so target is never left half-filled.
	dst := reflect.ValueOf(target)
	if dst.Kind() != reflect.Pointer || dst.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", ErrCrypto)
	}
	scratch := reflect.New(dst.Elem().Type())
	if err = json.Unmarshal(plaintext, scratch.Interface()); err != nil {
		return fmt.Errorf("%w: malformed plaintext", ErrCrypto)
	}
	dst.Elem().Set(scratch.Elem())

	return nil
}

func (c *sessionCipher) aead(secret string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(secret), salt, c.iterations, KeySize, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
