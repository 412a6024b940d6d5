package handler

import (
	"net/http"

	internal_errors "github.com/pintag-dev/pintag/internal/errors"
)

// errUnauthenticated is the fallback for handlers reached without a resolved
// user. The identity middleware normally rejects such requests first.
func errUnauthenticated() error {
	return &internal_errors.ErrorWithStatusCode{
		Message:    "Invalid or missing X-User-Name header.",
		StatusCode: http.StatusUnauthorized,
	}
}
