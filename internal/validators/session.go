// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldAlias targets the user alias (usually an email address).
	FieldAlias = "alias"

	// FieldCiphertext targets the base64 AES-GCM ciphertext of a session blob.
	FieldCiphertext = "ciphertext"

	// FieldIV targets the base64 GCM nonce of a session blob.
	FieldIV = "iv"

	// FieldSalt targets the base64 PBKDF2 salt of a session blob.
	FieldSalt = "salt"

	// FieldPassword targets the plaintext password of client-side credentials.
	FieldPassword = "password"
)

// SessionValidator implements [Validator] for session requests and
// client-side credentials. Values are opaque: only presence is checked.
type SessionValidator struct {
}

// NewSessionValidator constructs a new SessionValidator and returns it as the
// Validator interface.
func NewSessionValidator() Validator {
	return &SessionValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted for:
//   - models.CreateSessionRequest
//   - models.AliasRequest
//   - models.Credentials
//
// Returns ErrUnsupportedType for anything else.
func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateSessionRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateSessionRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreateRequest(*value, fields...)
	case models.AliasRequest:
		return v.validateAliasRequest(value, fields...)
	case *models.AliasRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateAliasRequest(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateCreateRequest(req models.CreateSessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAlias, FieldCiphertext, FieldIV, FieldSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldAlias:
			if isBlank(req.Alias) {
				return ErrEmptyAlias
			}
		case FieldCiphertext:
			if req.Ciphertext == "" {
				return ErrEmptyCiphertext
			}
		case FieldIV:
			if req.IV == "" {
				return ErrEmptyIV
			}
		case FieldSalt:
			if req.Salt == "" {
				return ErrEmptySalt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SessionValidator) validateAliasRequest(req models.AliasRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAlias}
	}

	for _, f := range fields {
		switch f {
		case FieldAlias:
			if isBlank(req.Alias) {
				return ErrEmptyAlias
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SessionValidator) validateCredentials(creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAlias, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldAlias:
			if isBlank(creds.Alias) {
				return ErrEmptyAlias
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
