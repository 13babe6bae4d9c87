package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// Client-facing messages shared by several handlers.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgUsernameExists     = "Username already exists."
	MsgInvalidRequest     = "Invalid request format"
	MsgUnexpected         = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned),
		errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, service.ErrTooManyAttempts):
		return http.StatusTooManyRequests

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return MsgUnexpected
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidCredentials

	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid token."

	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, service.ErrNotOwned),
		errors.Is(err, domain.ErrForbidden):
		return "You do not have permission to modify this resource"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPostNotFound):
		return "Post not found"

	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrUsernameExists):
		return MsgUsernameExists

	case errors.Is(err, store.ErrSlugExists):
		return "Slug already exists."

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, service.ErrTooManyAttempts):
		return "Too many login attempts. Please try again later."

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return "Validation error"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return MsgUnexpected
	}
}

// fieldErrors flattens domain validation errors into response field errors.
// It returns nil when err carries no field information.
func fieldErrors(err error) []shared.FieldError {
	var many domain.ValidationErrors
	if errors.As(err, &many) {
		out := make([]shared.FieldError, 0, len(many))
		for _, ve := range many {
			out = append(out, shared.FieldError{Field: ve.Field, Message: ve.Message})
		}
		return out
	}

	var one *domain.ValidationError
	if errors.As(err, &one) {
		return []shared.FieldError{{Field: one.Field, Message: one.Message}}
	}
	return nil
}

// HandleAPIError writes the response for err. Validation errors become a
// field list; everything else is mapped to a status and a safe message,
// which customMsg overrides when not empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, customMsg string) {
	if fields := fieldErrors(err); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}

	status := MapErrorToStatusCode(err)
	msg := customMsg
	if msg == "" {
		msg = GetSafeErrorMessage(err)
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, msg, err, opts...)
}

// handleDecodeError answers a request whose JSON body could not be decoded.
func handleDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if fields := shared.DecodeFieldErrors(err); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}
	if errors.Is(err, shared.ErrEmptyBody) {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
}

// handleValidationError answers a request that failed struct validation.
func handleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	if fields := shared.ValidatorFieldErrors(err); len(fields) > 0 {
		shared.RespondWithValidationErrors(w, r, fields)
		return
	}
	HandleAPIError(w, r, err, "")
}
