// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Account is the host application's view of a signed-in mailbox, as passed
// to login hooks.
type Account struct {
	Email string `json:"email"`
}

// LoginForm is the data captured from the host login form before the login
// request is sent.
type LoginForm struct {
	Email    string
	Password string
	SignMe   bool
}

// LoginResponse is the host application's answer to a login attempt as seen
// by the client. Error is non-empty when the login failed.
type LoginResponse struct {
	Error        string
	AuthEmail    string
	Email        string
	AccountEmail string
	ClientIP     string
}

// Alias returns the first non-empty alias reported by the host, falling back
// to the given value.
func (r LoginResponse) Alias(fallback string) string {
	for _, candidate := range []string{r.AuthEmail, r.Email, r.AccountEmail, fallback} {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
