// Package handlers defines HTTP-layer error codes used across all API endpoints
// and the mapping from service errors to responses.
//
// Codes are lowercase snake_case and stable; clients branch on them.
// Generic codes mirror HTTP status semantics. upstream_failed marks AI or
// market-data provider failures, which are never retried server-side.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-career-backend/internal/auth"
	"github.com/tbourn/go-career-backend/internal/market"
	"github.com/tbourn/go-career-backend/internal/services"
)

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeValidation       = "validation_failed"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeForbidden        = "forbidden"
	ErrCodeNotFound         = "not_found"
	ErrCodeConflict         = "conflict"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"
	ErrCodeUpstream         = "upstream_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeBadIdempotency   = "bad_idempotency_key"
)

// failErr translates a service error into the matching response. Unknown
// errors become a generic 500 so store details never reach clients.
func failErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "resource not found")
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		fail(c, http.StatusBadRequest, ErrCodeConflict, err.Error())
	case errors.Is(err, auth.ErrPasswordTooLong):
		failDetails(c, http.StatusBadRequest, ErrCodeValidation, "request validation failed",
			[]FieldError{{Field: "password", Rule: "pwbytes", Message: "must be at most 72 bytes"}})
	case errors.Is(err, services.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	case errors.Is(err, services.ErrPremiumRequired):
		fail(c, http.StatusForbidden, ErrCodeForbidden, err.Error())
	case errors.Is(err, services.ErrSkillNotOwned):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	case errors.Is(err, services.ErrUpstream):
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeUpstream, "AI service request failed")
	case errors.Is(err, market.ErrSymbolNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "symbol not found")
	case errors.Is(err, market.ErrNotConfigured),
		errors.Is(err, market.ErrUnavailable),
		errors.Is(err, market.ErrUpstream):
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeUpstream, "market data unavailable")
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
	}
}
