package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/config"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/internal/utils"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

const (
	routeCreate         = "/api/session/create"
	routeGet            = "/api/session/get"
	routeDelete         = "/api/session/delete"
	routeRefresh        = "/api/session/refresh"
	routeStatus         = "/api/session/status"
	routeTestConnection = "/api/session/test-connection"
)

type httpSessionClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPSessionClient constructs an HTTP/JSON implementation of
// [SessionAPIClient]. It normalises and validates the base URL from
// cfg.HTTPAddress ("host:port" gets an http:// scheme) and applies
// cfg.RequestTimeout to every call.
func NewHTTPSessionClient(cfg config.ClientAdapter, logger *logger.Logger) (SessionAPIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpSessionClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSessionClient) Create(ctx context.Context, req models.CreateSessionRequest) (models.CreateSessionResponse, error) {
	var resp models.CreateSessionResponse
	err := h.post(ctx, "create", routeCreate, req, &resp)
	return resp, err
}

func (h *httpSessionClient) Get(ctx context.Context, alias string) (models.GetSessionResponse, error) {
	var resp models.GetSessionResponse
	err := h.post(ctx, "get", routeGet, models.AliasRequest{Alias: alias}, &resp)
	return resp, err
}

func (h *httpSessionClient) Delete(ctx context.Context, alias string) (models.DeleteSessionResponse, error) {
	var resp models.DeleteSessionResponse
	err := h.post(ctx, "delete", routeDelete, models.AliasRequest{Alias: alias}, &resp)
	return resp, err
}

func (h *httpSessionClient) Refresh(ctx context.Context, alias string) (models.RefreshSessionResponse, error) {
	var resp models.RefreshSessionResponse
	err := h.post(ctx, "refresh", routeRefresh, models.AliasRequest{Alias: alias}, &resp)
	return resp, err
}

func (h *httpSessionClient) Status(ctx context.Context, alias string) (models.SessionStatusResponse, error) {
	var resp models.SessionStatusResponse
	err := h.post(ctx, "status", routeStatus, models.AliasRequest{Alias: alias}, &resp)
	return resp, err
}

func (h *httpSessionClient) TestConnection(ctx context.Context) (models.TestConnectionResponse, error) {
	var resp models.TestConnectionResponse
	err := h.post(ctx, "test connection", routeTestConnection, models.TestConnectionRequest{}, &resp)
	return resp, err
}

// Close implements [SessionAPIClient]. resty keeps no resources that need
// explicit release.
func (h *httpSessionClient) Close() error {
	return nil
}

// post sends body as JSON and decodes the structured answer into out. A 400
// carrying a structured body is a regular API answer, not a transport fault.
func (h *httpSessionClient) post(ctx context.Context, op, route string, body, out any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(route)
	if err != nil {
		h.logger.Debug().Err(err).Str("op", op).Msg("session API request failed")
		return mapTransportError(op+" request", err)
	}

	if resp.StatusCode() == http.StatusBadRequest {
		if json.Unmarshal(resp.Body(), out) == nil {
			return nil
		}
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s: decode response: %w: %w", op, ErrUnexpectedResponse, err)
	}
	return nil
}
