package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/go-ephemeral-sessions/models"

// SessionCipher is responsible for all client-side cryptography of a stored
// session. It knows nothing about the network, the store or the host
// application: it turns a payload into an opaque [models.EncryptedPayload]
// and back.
//
// Flow:
//
//	secret    = SecretKeeper.GetOrCreateSecret()
//	encrypted = Encrypt(secret, credentials)          (login)
//	            Decrypt(secret, c, iv, salt, &target) (page load)
type SessionCipher interface {
	// Encrypt serializes payload to JSON and seals it with a key derived
	// from secret and a fresh random salt. Every call uses a new salt and a
	// new nonce, so encrypting the same payload twice never yields the same
	// output.
	Encrypt(secret string, payload any) (models.EncryptedPayload, error)

	// Decrypt re-derives the key from secret and salt, opens ciphertext and
	// unmarshals the plaintext into target, which must be a non-nil pointer.
	// Any failure is reported as ErrCrypto and target is left untouched.
	Decrypt(secret, ciphertext, iv, salt string, target any) error
}

// SecretKeeper owns the ephemeral secret of one client session.
//
// The secret is ABSENT until the first GetOrCreateSecret and becomes ABSENT
// again after ClearSecret. It is never transmitted.
type SecretKeeper interface {
	// GetOrCreateSecret returns the current secret, generating and
	// persisting one if none exists. Repeated calls return the same value.
	GetOrCreateSecret() (string, error)

	// ClearSecret forgets the secret. Blobs encrypted under it can no longer
	// be opened.
	ClearSecret()
}

// VolatileStorage is a tab- or process-scoped string store that does not
// survive the client session.
type VolatileStorage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}
