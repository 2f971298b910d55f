package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// NewInvalidCredentialsError does not reveal whether the email or the password was wrong.
func NewInvalidCredentialsError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidCredentials,
		Message: "Invalid email or password",
		Code:    http.StatusUnauthorized,
	}
}

// NewTokenInvalidError creates an error for malformed, expired or mistyped tokens
func NewTokenInvalidError(details ...string) *AppError {
	return newAppError(ErrorTypeTokenInvalid, http.StatusUnauthorized, "Invalid or expired token", details)
}

// IsAuthError reports any error that should be answered with 401.
func IsAuthError(err error) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Code == http.StatusUnauthorized
}
