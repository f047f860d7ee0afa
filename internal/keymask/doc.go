// Package keymask derives opaque storage keys from user aliases.
//
// A key has the form "<namespace>:v1:session:<hex>", where hex is the
// HMAC-SHA256 of the normalized alias under a server-held secret. The key
// reveals nothing about the alias to anyone without the secret, and the same
// alias always maps to the same key while the secret is unchanged.
package keymask
