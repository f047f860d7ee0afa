package adapter

import "errors"

var (
	ErrEmptyAddress        = errors.New("empty address")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrTimeout             = errors.New("request timed out")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("session API unavailable")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)
