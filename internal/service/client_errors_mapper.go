// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/app"
)

// mapAPIFailure translates the error message of a structured API failure into
// a service sentinel.
func mapAPIFailure(msg string) error {
	switch msg {
	case app.MsgMissingRequiredParameters, app.MsgMissingAlias, app.MsgInvalidJSON:
		return fmt.Errorf("%w: %s", ErrValidation, msg)
	case app.MsgSessionNotFound, "":
		return ErrSessionNotFound
	case app.MsgStoreWriteFailed:
		return ErrStoreWriteFailed
	case app.MsgConnectionFailed:
		return ErrStoreUnavailable
	default:
		return fmt.Errorf("%w: %s", ErrAPIRejected, msg)
	}
}
