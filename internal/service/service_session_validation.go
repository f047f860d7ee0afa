package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/validators"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// SessionValidationService rejects malformed requests with [ErrValidation]
// before they reach the wrapped service.
type SessionValidationService struct {
	inner     SessionService
	validator validators.Validator
}

// NewSessionValidationService returns a wrapper that validates requests
// before passing them to the wrapped service.
func NewSessionValidationService() SessionServiceWrapper {
	return &SessionValidationService{
		validator: validators.NewSessionValidator(),
	}
}

func (v *SessionValidationService) Create(ctx context.Context, req models.CreateSessionRequest) (time.Duration, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return v.inner.Create(ctx, req)
}

func (v *SessionValidationService) Get(ctx context.Context, alias string) (models.SessionBlob, error) {
	if err := v.validateAlias(ctx, alias); err != nil {
		return models.SessionBlob{}, err
	}

	return v.inner.Get(ctx, alias)
}

func (v *SessionValidationService) Delete(ctx context.Context, alias string) (bool, error) {
	if err := v.validateAlias(ctx, alias); err != nil {
		return false, err
	}

	return v.inner.Delete(ctx, alias)
}

func (v *SessionValidationService) Refresh(ctx context.Context, alias string) (time.Duration, error) {
	if err := v.validateAlias(ctx, alias); err != nil {
		return 0, err
	}

	return v.inner.Refresh(ctx, alias)
}

func (v *SessionValidationService) Status(ctx context.Context, alias string) (time.Duration, error) {
	if err := v.validateAlias(ctx, alias); err != nil {
		return 0, err
	}

	return v.inner.Status(ctx, alias)
}

func (v *SessionValidationService) TestConnection(ctx context.Context) error {
	return v.inner.TestConnection(ctx)
}

func (v *SessionValidationService) Wrap(wrapper SessionService) SessionService {
	v.inner = wrapper
	return v
}

func (v *SessionValidationService) validateAlias(ctx context.Context, alias string) error {
	if err := v.validator.Validate(ctx, models.AliasRequest{Alias: alias}); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
