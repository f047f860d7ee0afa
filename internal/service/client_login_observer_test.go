package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/mock"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

func newTestObserver(t *testing.T) (LoginObserver, *mock.MockClientSessionService) {
	t.Helper()
	sessions := mock.NewMockClientSessionService(gomock.NewController(t))
	return NewLoginObserver(sessions, time.Second, logger.Nop()), sessions
}

func TestLoginObserver_SuccessStoresAsynchronously(t *testing.T) {
	obs, sessions := newTestObserver(t)

	sessions.EXPECT().
		StoreSession(gomock.Any(), "auth@example.com", "pw", map[string]any{MetaSignMe: true, MetaIP: "10.0.0.1"}).
		Return(4*time.Hour, nil)

	obs.OnLoginAttempt(models.LoginForm{Email: " typed@example.com ", Password: "pw", SignMe: true})
	obs.OnLoginResponse(models.LoginResponse{AuthEmail: "auth@example.com", Email: "email@example.com", ClientIP: "10.0.0.1"})
	obs.Wait()
}

func TestLoginObserver_AliasFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		resp models.LoginResponse
		want string
	}{
		{name: "email", resp: models.LoginResponse{Email: "e@x"}, want: "e@x"},
		{name: "account email", resp: models.LoginResponse{AccountEmail: "acc@x"}, want: "acc@x"},
		{name: "captured", resp: models.LoginResponse{}, want: "typed@x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, sessions := newTestObserver(t)
			sessions.EXPECT().StoreSession(gomock.Any(), tt.want, "pw", gomock.Any()).Return(time.Hour, nil)

			obs.OnLoginAttempt(models.LoginForm{Email: "typed@x", Password: "pw"})
			obs.OnLoginResponse(tt.resp)
			obs.Wait()
		})
	}
}

func TestLoginObserver_FailedLoginDiscardsCapture(t *testing.T) {
	obs, _ := newTestObserver(t)

	obs.OnLoginAttempt(models.LoginForm{Email: "a@x", Password: "pw"})
	obs.OnLoginResponse(models.LoginResponse{Error: "AuthError"})
	obs.Wait()

	// capture is gone: a later success has nothing to store
	obs.OnLoginResponse(models.LoginResponse{AuthEmail: "a@x"})
	obs.Wait()
}

func TestLoginObserver_EmptyFieldsClearCapture(t *testing.T) {
	obs, _ := newTestObserver(t)

	obs.OnLoginAttempt(models.LoginForm{Email: "a@x", Password: "pw"})
	obs.OnLoginAttempt(models.LoginForm{Email: "a@x", Password: ""})
	obs.OnLoginResponse(models.LoginResponse{AuthEmail: "a@x"})

	obs.OnLoginAttempt(models.LoginForm{Email: "   ", Password: "pw"})
	obs.OnLoginResponse(models.LoginResponse{AuthEmail: "a@x"})
	obs.Wait()
}

func TestLoginObserver_CaptureConsumedOnce(t *testing.T) {
	obs, sessions := newTestObserver(t)
	sessions.EXPECT().StoreSession(gomock.Any(), "a@x", "pw", gomock.Any()).Return(time.Hour, nil).Times(1)

	obs.OnLoginAttempt(models.LoginForm{Email: "a@x", Password: "pw"})
	obs.OnLoginResponse(models.LoginResponse{})
	obs.OnLoginResponse(models.LoginResponse{})
	obs.Wait()
}

func TestLoginObserver_StoreFailureIsSwallowed(t *testing.T) {
	obs, sessions := newTestObserver(t)
	sessions.EXPECT().StoreSession(gomock.Any(), "a@x", "pw", gomock.Any()).Return(time.Duration(0), ErrStoreWriteFailed)

	obs.OnLoginAttempt(models.LoginForm{Email: "a@x", Password: "pw"})
	assert.NotPanics(t, func() { obs.OnLoginResponse(models.LoginResponse{}) })
	obs.Wait()
}

func TestLoginObserver_StoreHasDeadline(t *testing.T) {
	obs, sessions := newTestObserver(t)
	sessions.EXPECT().StoreSession(gomock.Any(), "a@x", "pw", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string, _ map[string]any) (time.Duration, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return time.Hour, nil
		})

	obs.OnLoginAttempt(models.LoginForm{Email: "a@x", Password: "pw"})
	obs.OnLoginResponse(models.LoginResponse{})
	obs.Wait()
}

func TestLoginObserver_OnUnload(t *testing.T) {
	obs, sessions := newTestObserver(t)
	sessions.EXPECT().ClearSecret()

	obs.OnUnload()
}

func TestLoginObserver_OnLogout(t *testing.T) {
	obs, sessions := newTestObserver(t)
	gomock.InOrder(
		sessions.EXPECT().DeleteSession(gomock.Any(), "a@x").Return(true, nil),
		sessions.EXPECT().ClearSecret(),
	)

	require.NoError(t, obs.OnLogout(context.Background(), "a@x"))
}

func TestLoginObserver_OnLogoutClearsSecretEvenOnError(t *testing.T) {
	obs, sessions := newTestObserver(t)
	boom := errors.New("boom")
	gomock.InOrder(
		sessions.EXPECT().DeleteSession(gomock.Any(), "a@x").Return(false, boom),
		sessions.EXPECT().ClearSecret(),
	)

	assert.ErrorIs(t, obs.OnLogout(context.Background(), "a@x"), boom)
}
