package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coastalcarbon/cc-registry/internal/domain"
	"github.com/coastalcarbon/cc-registry/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"

	// Server errors (5xx)
	errCodeInternalError       ErrorCode = "internal_error"
	errCodeUpstreamUnavailable ErrorCode = "upstream_unavailable"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.Error(err, fields...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}

// respondStoreError maps ledger errors onto HTTP responses. Precondition
// and validation failures are the caller's fault, missing rows are 404,
// everything else is an internal error.
func respondStoreError(c *gin.Context, err error) {
	var insufficient *domain.InsufficientBalanceError

	switch {
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrSellerNotFound),
		errors.Is(err, domain.ErrBuyerNotFound):
		respondNotFound(c, err.Error())
	case errors.Is(err, domain.ErrProjectAlreadyDecided),
		errors.Is(err, domain.ErrInvalidTreeCount),
		errors.Is(err, domain.ErrNoWalletAddress),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidSellerKind):
		respondBadRequest(c, err.Error())
	case errors.As(err, &insufficient):
		respondBadRequest(c, "Insufficient balance", err.Error())
	case errors.Is(err, domain.ErrGatewayUnavailable):
		respondWithError(c, http.StatusServiceUnavailable, errCodeUpstreamUnavailable, "Chain service unavailable", err.Error())
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
