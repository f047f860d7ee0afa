// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the session API writes into the
// error and message fields of its structured responses.
//
// The client maps them back to sentinel errors, so the wording is part of the
// wire contract and is kept in one place.
package app

const (
	// MsgMissingRequiredParameters is returned by Create when alias,
	// ciphertext, iv or salt is empty.
	MsgMissingRequiredParameters = "Missing required parameters"

	// MsgMissingAlias is returned by Get, Delete, Refresh and Status when the
	// alias is empty.
	MsgMissingAlias = "Missing alias parameter"

	// MsgInvalidJSON is returned with HTTP 400 when the request body cannot be
	// decoded.
	MsgInvalidJSON = "Invalid JSON body"

	// MsgStoreWriteFailed is returned when the store rejected a Create.
	MsgStoreWriteFailed = "Failed to store session in Redis"

	// MsgSessionNotFound is returned when no session exists for the alias.
	// Expired and unreachable sessions read the same way.
	MsgSessionNotFound = "Session not found or expired"

	// MsgConnectionSuccessful and MsgConnectionFailed answer TestConnection.
	MsgConnectionSuccessful = "Redis connection successful"
	MsgConnectionFailed     = "Redis connection failed"

	// MsgInternalServerError is returned for any unexpected fault, including
	// recovered panics.
	MsgInternalServerError = "Internal server error"
)
