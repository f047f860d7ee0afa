package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapHTTPError turns a non-2xx response into a sentinel-wrapped error.
// A 400 is only an error when the body is not a structured API answer; the
// caller checks that first.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s", ErrTimeout, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedResponse, resp.StatusCode(), body)
	}
}

// mapTransportError classifies an error returned before any response was
// received.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrTimeout, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
}

func mapGRPCError(op string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return mapTransportError(op, err)
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return fmt.Errorf("%s: %w: %s", op, ErrBadRequest, st.Message())
	case codes.NotFound, codes.Unimplemented:
		return fmt.Errorf("%s: %w: %s", op, ErrNotFound, st.Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w: %s", op, ErrTimeout, st.Message())
	case codes.Unavailable, codes.Canceled:
		return fmt.Errorf("%s: %w: %s", op, ErrUnavailable, st.Message())
	case codes.Internal, codes.Unknown:
		return fmt.Errorf("%s: %w: %s", op, ErrInternalServerError, st.Message())
	default:
		return fmt.Errorf("%s: %w: %s: %s", op, ErrUnexpectedResponse, st.Code(), st.Message())
	}
}
