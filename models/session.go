// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionBlob is the envelope stored in the session cache under a masked key.
//
// The server writes and reads it verbatim. Only the envelope fields are
// known to the server; Ciphertext, IV and Salt are opaque transport-safe
// encodings produced by the client and Meta is caller-supplied data that is
// never validated server-side.
type SessionBlob struct {
	// Ciphertext is the base64-encoded AEAD output (ciphertext and tag).
	Ciphertext string `json:"ciphertext"`

	// IV is the base64-encoded nonce used for encryption.
	IV string `json:"iv"`

	// Salt is the base64-encoded key-derivation salt.
	Salt string `json:"salt"`

	// Meta is an opaque key/value map supplied by the client.
	Meta map[string]any `json:"meta"`

	// Timestamp is the Unix time (seconds) at which the Create request was
	// accepted by the server.
	Timestamp int64 `json:"timestamp"`

	// ServerTimestamp is the Unix time (seconds) at which the blob was
	// handed to the store.
	ServerTimestamp int64 `json:"server_timestamp"`
}

// EncryptedPayload is the output of client-side encryption: every field is a
// base64 (standard encoding) string of a binary buffer.
type EncryptedPayload struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	Salt       string `json:"salt"`
}

// Credentials is the plaintext payload the client encrypts before storing a
// session. It never leaves the client unencrypted.
type Credentials struct {
	Alias    string         `json:"alias"`
	Password string         `json:"password"`
	Meta     map[string]any `json:"meta,omitempty"`
}
