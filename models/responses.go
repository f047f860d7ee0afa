// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Result carries the fields every session API response shares. A failed
// operation always reports Success == false together with a human-readable
// Error; it never surfaces as a transport-level fault.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CreateSessionResponse is returned by Create. TTL is the effective lifetime
// in seconds applied to the stored blob.
type CreateSessionResponse struct {
	Result
	TTL int64 `json:"ttl,omitempty"`
}

// SessionView is the part of a stored blob returned to the client by Get.
type SessionView struct {
	Ciphertext      string         `json:"ciphertext"`
	IV              string         `json:"iv"`
	Salt            string         `json:"salt"`
	Meta            map[string]any `json:"meta"`
	Timestamp       int64          `json:"timestamp"`
	ServerTimestamp int64          `json:"server_timestamp,omitempty"`
}

// NewSessionView copies the client-visible fields of blob.
func NewSessionView(blob SessionBlob) *SessionView {
	meta := blob.Meta
	if meta == nil {
		meta = map[string]any{}
	}

	return &SessionView{
		Ciphertext:      blob.Ciphertext,
		IV:              blob.IV,
		Salt:            blob.Salt,
		Meta:            meta,
		Timestamp:       blob.Timestamp,
		ServerTimestamp: blob.ServerTimestamp,
	}
}

// GetSessionResponse is returned by Get. Session is nil whenever Success is
// false.
type GetSessionResponse struct {
	Result
	Session *SessionView `json:"session,omitempty"`
}

// DeleteSessionResponse is returned by Delete. Success reports whether a
// session existed and was removed.
type DeleteSessionResponse struct {
	Result
}

// RefreshSessionResponse is returned by Refresh.
type RefreshSessionResponse struct {
	Result
	TTL int64 `json:"ttl"`
}

// SessionStatusResponse is returned by Status. It never carries blob
// contents.
type SessionStatusResponse struct {
	Result
	Exists       bool   `json:"exists"`
	TTLRemaining int64  `json:"ttl_remaining,omitempty"`
	Message      string `json:"message,omitempty"`
}

// TestConnectionResponse is returned by TestConnection.
type TestConnectionResponse struct {
	Result
	Message string `json:"message,omitempty"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version     string `json:"version"`
	BuildDate   string `json:"build_date,omitempty"`
	BuildCommit string `json:"build_commit,omitempty"`
}
