package service

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrRouteNotFound   = errors.New("route not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrBadRequest marks input rejected before any storage is touched
	ErrBadRequest = errors.New("bad request")
)

// badRequest wraps a validation message so callers can match ErrBadRequest
func badRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}
