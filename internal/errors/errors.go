package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering with an email already on file.
	ErrEmailTaken = errors.New("Email already registered")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("Incorrect email or password")
	// ErrInvalidToken is returned when a bearer token fails verification.
	ErrInvalidToken = errors.New("Invalid token")
	// ErrUserNotFound is returned when a verified token points at no user.
	ErrUserNotFound = errors.New("User not found")
	// ErrAdminRequired is returned when a non-admin hits an admin route.
	ErrAdminRequired = errors.New("Admin access required")
	// ErrOfferNotFound is returned when an offer id does not exist.
	ErrOfferNotFound = errors.New("Offer not found")
	// ErrOfferAlreadySaved is returned when a user saves the same offer twice.
	ErrOfferAlreadySaved = errors.New("Offer already saved")
	// ErrSavedOfferNotFound is returned when unsaving a relation that is absent.
	ErrSavedOfferNotFound = errors.New("Saved offer not found")
)

// ErrorResponse is the wire shape of every error: {"detail": "..."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Detail     string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, detail string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Detail: e.Detail}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unexpected store failures
// collapse to a generic 500 without leaking internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrOfferAlreadySaved):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrAdminRequired):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrOfferNotFound),
		errors.Is(err, ErrSavedOfferNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
