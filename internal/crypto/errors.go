package crypto

import "errors"

var (
	// ErrCrypto is returned for every decryption failure: malformed
	// encodings, wrong lengths, authentication-tag mismatch and undecodable
	// plaintext. Callers surface it as "session invalid or expired".
	ErrCrypto = errors.New("session invalid or expired")

	ErrEmptySecret = errors.New("ephemeral secret is empty")
)
