// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keymask

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"
	"sync"
)

const (
	// SecretSize is the required length of the decoded masking secret.
	SecretSize = 32

	keyVersion = "v1"
	keyKind    = "session"
)

// Masker maps aliases to storage keys. A Masker is safe for concurrent use.
type Masker struct {
	namespace  string
	hasherPool sync.Pool
	ready      bool
}

// New decodes secretB64 (standard base64 of exactly [SecretSize] bytes) and
// returns a Masker producing keys under namespace.
//
// Returns [ErrConfiguration] if the secret is empty, undecodable or of the
// wrong length, or if namespace is empty.
func New(secretB64, namespace string) (*Masker, error) {
	secretB64 = strings.TrimSpace(secretB64)
	if secretB64 == "" {
		return nil, fmt.Errorf("%w: secret is empty", ErrConfiguration)
	}

	secret, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		return nil, fmt.Errorf("%w: secret is not valid base64", ErrConfiguration)
	}
	if len(secret) != SecretSize {
		return nil, fmt.Errorf("%w: secret must decode to %d bytes, got %d", ErrConfiguration, SecretSize, len(secret))
	}

	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return nil, fmt.Errorf("%w: namespace is empty", ErrConfiguration)
	}

	m := &Masker{namespace: namespace, ready: true}
	m.hasherPool.New = func() any {
		return hmac.New(sha256.New, secret)
	}

	return m, nil
}

// Mask returns the storage key for alias. It performs no I/O and is
// deterministic for a given secret and namespace.
func (m *Masker) Mask(alias string) (string, error) {
	if m == nil || !m.ready {
		return "", ErrConfiguration
	}

	normalized := Normalize(alias)
	if normalized == "" {
		return "", ErrEmptyAlias
	}

	h := m.hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(normalized))
	sum := h.Sum(nil)

	h.Reset()
	m.hasherPool.Put(h)

	return m.namespace + ":" + keyVersion + ":" + keyKind + ":" + hex.EncodeToString(sum), nil
}

// Namespace returns the key prefix the Masker was built with.
func (m *Masker) Namespace() string {
	if m == nil {
		return ""
	}
	return m.namespace
}

// Normalize trims surrounding whitespace and lower-cases alias.
func Normalize(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}
