// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// CreateSessionRequest is the payload of the Create operation.
type CreateSessionRequest struct {
	Alias      string `json:"alias"`
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	Salt       string `json:"salt"`
	Meta       Meta   `json:"meta,omitempty"`
}

// Meta is the client-supplied metadata of a session. Only a JSON object is
// kept; any other JSON value decodes to an empty Meta and null leaves it nil.
type Meta map[string]any

func (m *Meta) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		*m = Meta{}
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*m = obj
	return nil
}

// AliasRequest is the payload shared by Get, Delete, Refresh and Status.
type AliasRequest struct {
	Alias string `json:"alias"`
}

// TestConnectionRequest is the (empty) payload of the TestConnection
// operation.
type TestConnectionRequest struct{}
