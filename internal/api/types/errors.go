package types

import (
	"errors"
	"net/http"

	appErr "github.com/recipebox/server/pkg/errors"
)

// FromAppError converts an error into the wire representation. Internal
// failures are masked with an opaque message; callers log the cause.
func FromAppError(err error) *APIError {
	if err == nil {
		return nil
	}
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		if ae.Code == appErr.CodeInternal {
			return &APIError{Code: string(ae.Code), Message: "internal server error"}
		}
		return &APIError{Code: string(ae.Code), Message: ae.Message, Fields: ae.Fields}
	}
	return &APIError{Code: string(appErr.CodeUnknown), Message: err.Error()}
}

// StatusFromError maps error codes to HTTP statuses. Duplicate-unique-field
// failures are validation errors to the caller (400), and out-of-scope
// resources are indistinguishable from absent ones (404).
func StatusFromError(err error) int {
	var ae *appErr.AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Code {
	case appErr.CodeInvalid, appErr.CodeAlreadyExists:
		return http.StatusBadRequest
	case appErr.CodeNotFound:
		return http.StatusNotFound
	case appErr.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
