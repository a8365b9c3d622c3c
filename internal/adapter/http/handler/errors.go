package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reviewpulse/sentiment-api/internal/ingest"
	"github.com/reviewpulse/sentiment-api/internal/usecase"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP error responses.
// It provides consistent error handling across all handlers: validation
// failures are 400, oversize files 413, auth failures 401, registration
// conflicts 409 and anything unexpected 500.
func MapUsecaseError(err error) ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrEmptyText):
		return ErrorResponse{http.StatusBadRequest, "EMPTY_TEXT", "text must not be empty"}
	case errors.Is(err, usecase.ErrTextTooLong):
		return ErrorResponse{http.StatusBadRequest, "TEXT_TOO_LONG", "text exceeds maximum length"}
	case errors.Is(err, usecase.ErrEmptyBatch):
		return ErrorResponse{http.StatusBadRequest, "EMPTY_BATCH", "no texts to classify"}
	case errors.Is(err, usecase.ErrBatchTooLarge):
		return ErrorResponse{http.StatusBadRequest, "BATCH_TOO_LARGE", "batch exceeds maximum size"}
	case errors.Is(err, ingest.ErrFileTooLarge):
		return ErrorResponse{http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"}
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		return ErrorResponse{http.StatusBadRequest, "UNSUPPORTED_FILE_FORMAT", "supported formats: csv, json, txt"}
	case errors.Is(err, ingest.ErrNoTextColumn):
		return ErrorResponse{http.StatusBadRequest, "NO_TEXT_COLUMN", "no text column found in CSV header"}
	case errors.Is(err, ingest.ErrUnsupportedJSONShape):
		return ErrorResponse{http.StatusBadRequest, "UNSUPPORTED_JSON_SHAPE", "unsupported JSON shape"}
	case errors.Is(err, usecase.ErrMissingToken):
		return ErrorResponse{http.StatusUnauthorized, "MISSING_TOKEN", "missing bearer token"}
	case errors.Is(err, usecase.ErrInvalidToken):
		return ErrorResponse{http.StatusUnauthorized, "INVALID_TOKEN", "invalid token"}
	case errors.Is(err, usecase.ErrExpiredToken):
		return ErrorResponse{http.StatusUnauthorized, "EXPIRED_TOKEN", "token expired"}
	case errors.Is(err, usecase.ErrUnknownSubject):
		return ErrorResponse{http.StatusUnauthorized, "UNKNOWN_SUBJECT", "token subject no longer exists"}
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return ErrorResponse{http.StatusUnauthorized, "INVALID_CREDENTIALS", "incorrect username or password"}
	case errors.Is(err, usecase.ErrInactiveUser):
		return ErrorResponse{http.StatusBadRequest, "INACTIVE_USER", "inactive user"}
	case errors.Is(err, usecase.ErrDuplicateUsername):
		return ErrorResponse{http.StatusConflict, "DUPLICATE_USERNAME", "username already registered"}
	case errors.Is(err, usecase.ErrDuplicateEmail):
		return ErrorResponse{http.StatusConflict, "DUPLICATE_EMAIL", "email already registered"}
	default:
		return ErrorResponse{http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"}
	}
}

// HandleUsecaseError handles a usecase error by sending an appropriate HTTP
// response
func HandleUsecaseError(c *gin.Context, err error) {
	errResp := MapUsecaseError(err)
	respondError(c, errResp.StatusCode, errResp.Code, errResp.Message)
}

// HandleMalformedBody handles a request body that failed binding
func HandleMalformedBody(c *gin.Context, err error) {
	respondError(c, http.StatusUnprocessableEntity, "MALFORMED_BODY", err.Error())
}
