// Package crypto implements the client side of the ephemeral session scheme.
//
// A [SecretKeeper] holds one random secret per client session in
// [VolatileStorage]. A [SessionCipher] derives a per-blob AES-256-GCM key
// from that secret with PBKDF2-HMAC-SHA256 and a fresh salt, so the server
// only ever sees ciphertext it cannot open.
package crypto
