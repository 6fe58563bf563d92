package response

import "net/http"

var (
	ErrInvalidRequest  = newError(http.StatusBadRequest, "Invalid request")
	ErrInvalidPassword = newError(http.StatusUnauthorized, "Invalid credentials")
	ErrTokenInvalid    = newError(http.StatusUnauthorized, "Invalid or missing token")
	ErrUnauthorized    = newError(http.StatusForbidden, "Permission denied")
	ErrNotFound        = newError(http.StatusNotFound, "Record not found")
	ErrAlreadyExists   = newError(http.StatusConflict, "Record already exists")
	ErrTooManyRequests = newError(http.StatusTooManyRequests, "Too many attempts, try again later")
	ErrDatabase        = newError(http.StatusInternalServerError, "Failed to retrieve data")
	ErrExport          = newError(http.StatusInternalServerError, "Export generation failed")
	ErrServerInternal  = newError(http.StatusInternalServerError, "Internal server error")
)
