package api

import (
	"errors"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/app"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/service"
)

var errorMessageMap = map[error]string{
	service.ErrSessionNotFound:  app.MsgSessionNotFound,
	service.ErrStoreWriteFailed: app.MsgStoreWriteFailed,
	service.ErrStoreUnavailable: app.MsgConnectionFailed,
}

// messageFromError returns the client-facing message for err. Validation
// failures of Create name all required parameters; every other operation only
// takes an alias.
func messageFromError(op string, err error) string {
	if errors.Is(err, service.ErrValidation) {
		if op == opCreate {
			return app.MsgMissingRequiredParameters
		}
		return app.MsgMissingAlias
	}

	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// isExpected reports whether err is part of normal operation and must not be
// logged as a fault.
func isExpected(err error) bool {
	return errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrSessionNotFound)
}
