package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pharmahub/backend/internal/app/models/dto"
	"github.com/pharmahub/backend/internal/pkg/apperrors"
	"github.com/pharmahub/backend/internal/pkg/logger"
)

var exposeDebugInfo atomic.Bool

func init() {
	exposeDebugInfo.Store(true)
}

// SetDebugInfo controls whether the underlying error text is attached to
// error responses. It is switched off in production.
func SetDebugInfo(enabled bool) {
	exposeDebugInfo.Store(enabled)
}

type errorMapping struct {
	target  error
	status  int
	code    dto.ErrorCode
	message string
}

var errorMappings = []errorMapping{
	{apperrors.ErrResourceNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Not found"},
	{apperrors.ErrResourceAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Resource already exists"},
	{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
	{apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired"},
	{apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Unauthorized"},
	{apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, dto.ErrorCodeBadRequest, "Bad request"},
	{apperrors.ErrUnsupportedFileType, http.StatusUnsupportedMediaType, dto.ErrorCodeUnsupportedFile, "Unsupported file type"},
	{apperrors.ErrFileTooLarge, http.StatusRequestEntityTooLarge, dto.ErrorCodeFileTooLarge, "File too large"},
	{apperrors.ErrRateLimited, http.StatusTooManyRequests, dto.ErrorCodeTooManyRequests, "Too many requests"},
}

// HandleAPIError writes the error response matching err and aborts the request
func HandleAPIError(c *gin.Context, err error) {
	status, detail := resolveError(err)

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Str("requestID", c.GetString(RequestIDKey)).
			Msg("Request failed")
		if exposeDebugInfo.Load() {
			detail.WithDebugInfo("%v", err)
		}
	}

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// HandleBindingError reports a request body or query that failed to bind.
// Missing required fields are listed in the message.
func HandleBindingError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		HandleAPIError(c, apperrors.ErrFileTooLarge)
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
}

func resolveError(err error) (int, *dto.ErrorDetail) {
	var verrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &verrs), errors.As(err, &syntaxErr):
		return http.StatusBadRequest, dto.HandleValidationError(err)
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, dto.NewErrorDetail(dto.ErrorCodeFileTooLarge, "Request body too large")
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		message := m.message
		if msg := apperrors.Message(err); msg != "" {
			message = msg
		}
		detail := dto.NewErrorDetail(m.code, message)
		var ce *apperrors.CustomError
		if errors.As(err, &ce) && len(ce.Details) > 0 {
			detail.WithDetails(ce.Details)
		}
		if m.status < http.StatusInternalServerError {
			detail.WithSeverity(dto.ErrorSeverityWarning)
		}
		return m.status, detail
	}

	return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error").
		WithSeverity(dto.ErrorSeverityCritical)
}

// HandleMissingFields reports a binding failure like HandleBindingError, but
// a failed validation carries message instead of the generic one.
func HandleMissingFields(c *gin.Context, err error, message string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		HandleAPIError(c, apperrors.ErrFileTooLarge)
		return
	}
	detail := dto.HandleValidationError(err)
	if detail.Code == dto.ErrorCodeValidationFailed && message != "" {
		detail.Message = message
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}
