// Package http is the HTTP transport of the session API.
//
// Every session route decodes a JSON body, delegates to [api.SessionAPI] and
// answers HTTP 200 with the structured result; only undecodable bodies are
// rejected with 400. The router also serves the version, host-hook and
// Prometheus endpoints, and wraps everything in trace-id, access-log, gzip
// and timeout middleware.
package http
