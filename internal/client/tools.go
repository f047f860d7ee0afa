package client

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/store"
)

const (
	// KeyMaskSecretSize is the number of random bytes in a generated key
	// mask secret.
	KeyMaskSecretSize = 32
	// ProbeTTL is the lifetime of the key written by [ProbeStore].
	ProbeTTL = 60 * time.Second
)

var (
	ErrProbePing   = errors.New("store did not answer PING")
	ErrProbeSet    = errors.New("store rejected the probe key")
	ErrProbeGet    = errors.New("probe key could not be read back")
	ErrProbeDelete = errors.New("probe key could not be deleted")
)

// GenerateKeyMaskSecret returns KeyMaskSecretSize random bytes from random,
// standard base64 encoded, suitable for APP_KEY_MASK_SECRET. A nil random
// uses crypto/rand.
func GenerateKeyMaskSecret(random io.Reader) (string, error) {
	if random == nil {
		random = rand.Reader
	}

	raw := make([]byte, KeyMaskSecretSize)
	if _, err := io.ReadFull(random, raw); err != nil {
		return "", fmt.Errorf("generate key mask secret: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// ProbeReport lists the steps [ProbeStore] completed.
type ProbeReport struct {
	Key     string
	Ping    bool
	Set     bool
	Get     bool
	Deleted bool
}

// ProbeStore connects to the session cache directly and runs PING, then
// SET/GET/DEL on a throwaway key that expires after ProbeTTL. It stops at the
// first failing step.
func ProbeStore(ctx context.Context, cfg config.Redis, namespace string, now time.Time, logger *logger.Logger) (ProbeReport, error) {
	sessions, err := store.NewRedisSessionStore(cfg, logger)
	if err != nil {
		return ProbeReport{}, err
	}
	defer sessions.Close()

	if namespace == "" {
		namespace = config.DefaultKeyNamespace
	}
	report := ProbeReport{Key: namespace + ":test:" + strconv.FormatInt(now.Unix(), 10)}

	if report.Ping = sessions.Ping(ctx); !report.Ping {
		return report, ErrProbePing
	}

	value, err := json.Marshal(map[string]any{"test": "data", "timestamp": now.Unix()})
	if err != nil {
		return report, err
	}
	if report.Set = sessions.SetWithTTL(ctx, report.Key, value, ProbeTTL); !report.Set {
		return report, ErrProbeSet
	}

	got, ok := sessions.Get(ctx, report.Key)
	if report.Get = ok && string(got) == string(value); !report.Get {
		return report, ErrProbeGet
	}

	if report.Deleted = sessions.Delete(ctx, report.Key); !report.Deleted {
		return report, ErrProbeDelete
	}
	return report, nil
}
