// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keymask

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecret(b byte) (string, []byte) {
	raw := make([]byte, SecretSize)
	for i := range raw {
		raw[i] = b
	}
	return base64.StdEncoding.EncodeToString(raw), raw
}

// ── New ───────────────────────────────────────────────────────────────────────

func TestNew_RejectsBadSecrets(t *testing.T) {
	short := base64.StdEncoding.EncodeToString([]byte("too-short"))

	tests := []struct {
		name      string
		secret    string
		namespace string
	}{
		{name: "empty", secret: "", namespace: "snappymail"},
		{name: "whitespace", secret: "   ", namespace: "snappymail"},
		{name: "not base64", secret: "!!not-base64!!", namespace: "snappymail"},
		{name: "wrong length", secret: short, namespace: "snappymail"},
		{name: "empty namespace", secret: func() string { s, _ := testSecret(1); return s }(), namespace: " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.secret, tt.namespace)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestNew_Valid(t *testing.T) {
	secret, _ := testSecret(7)

	m, err := New(secret, "snappymail")

	require.NoError(t, err)
	assert.Equal(t, "snappymail", m.Namespace())
}

// ── Mask ──────────────────────────────────────────────────────────────────────

func TestMask_MatchesDirectHMAC(t *testing.T) {
	secret, raw := testSecret(3)
	m, err := New(secret, "snappymail")
	require.NoError(t, err)

	key, err := m.Mask("  Alice@Example.COM ")
	require.NoError(t, err)

	h := hmac.New(sha256.New, raw)
	h.Write([]byte("alice@example.com"))
	want := "snappymail:v1:session:" + hex.EncodeToString(h.Sum(nil))

	assert.Equal(t, want, key)
}

func TestMask_Deterministic(t *testing.T) {
	secret, _ := testSecret(5)
	m, err := New(secret, "snappymail")
	require.NoError(t, err)

	k1, err := m.Mask("user@example.com")
	require.NoError(t, err)
	k2, err := m.Mask("user@example.com")
	require.NoError(t, err)

	assert.Equal(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, "snappymail:v1:session:"))
	assert.Len(t, strings.TrimPrefix(k1, "snappymail:v1:session:"), 64)
}

func TestMask_NormalizesCaseAndWhitespace(t *testing.T) {
	secret, _ := testSecret(5)
	m, err := New(secret, "snappymail")
	require.NoError(t, err)

	a, err := m.Mask("User@Example.com")
	require.NoError(t, err)
	b, err := m.Mask("\tuser@example.com\n")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMask_DistinctAliasesDistinctKeys(t *testing.T) {
	secret, _ := testSecret(5)
	m, err := New(secret, "snappymail")
	require.NoError(t, err)

	a, err := m.Mask("alice@example.com")
	require.NoError(t, err)
	b, err := m.Mask("bob@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestMask_DifferentSecretsDifferentKeys(t *testing.T) {
	s1, _ := testSecret(1)
	s2, _ := testSecret(2)
	m1, err := New(s1, "snappymail")
	require.NoError(t, err)
	m2, err := New(s2, "snappymail")
	require.NoError(t, err)

	a, err := m1.Mask("alice@example.com")
	require.NoError(t, err)
	b, err := m2.Mask("alice@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestMask_KeyDoesNotContainAlias(t *testing.T) {
	secret, _ := testSecret(9)
	m, err := New(secret, "snappymail")
	require.NoError(t, err)

	key, err := m.Mask("alice@example.com")
	require.NoError(t, err)

	assert.NotContains(t, key, "alice")
}

func TestMask_EmptyAlias(t *testing.T) {
	secret, _ := testSecret(5)
	m, err := New(secret, "snappymail")
	require.NoError(t, err)

	for _, alias := range []string{"", "   ", "\t\n"} {
		_, err := m.Mask(alias)
		assert.ErrorIs(t, err, ErrEmptyAlias)
	}
}

func TestMask_UnconfiguredFailsClosed(t *testing.T) {
	var nilMasker *Masker
	_, err := nilMasker.Mask("alice@example.com")
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = (&Masker{}).Mask("alice@example.com")
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestMask_ConcurrentUse(t *testing.T) {
	secret, _ := testSecret(4)
	m, err := New(secret, "snappymail")
	require.NoError(t, err)

	want, err := m.Mask("alice@example.com")
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = m.Mask("Alice@example.com")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "user@example.com", Normalize("  USER@example.COM  "))
	assert.Equal(t, "", Normalize("   "))
}
