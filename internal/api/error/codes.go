package error

import (
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	UnknownError        ErrorCode = "unknown_error"
	InternalServerError ErrorCode = "internal_server_error"
	BadRequest          ErrorCode = "bad_request"
	UnprocessibleEntity ErrorCode = "unprocessible_entity"
	RequestTooLarge     ErrorCode = "request_too_large"
	TooManyRequests     ErrorCode = "too_many_requests"
	MethodNotAllowed    ErrorCode = "method_not_allowed"
	PageNotFound        ErrorCode = "page_not_found"
	Unauthenticated     ErrorCode = "unauthenticated"
	InvalidCredentials  ErrorCode = "invalid_credentials"
	WeakPassword        ErrorCode = "weak_password"
	UsernameConflict    ErrorCode = "username_conflict"
	EmailConflict       ErrorCode = "email_conflict"
	RecipeNotFound      ErrorCode = "recipe_not_found"
	RecipeNotOwned      ErrorCode = "recipe_not_owned"
	UserNotFound        ErrorCode = "user_not_found"
	UnsupportedImage    ErrorCode = "unsupported_image"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:        0, // No error code - unknown
	InternalServerError: http.StatusInternalServerError,
	BadRequest:          http.StatusBadRequest,
	UnprocessibleEntity: http.StatusUnprocessableEntity,
	RequestTooLarge:     http.StatusRequestEntityTooLarge,
	TooManyRequests:     http.StatusTooManyRequests,
	MethodNotAllowed:    http.StatusMethodNotAllowed,
	PageNotFound:        http.StatusNotFound,
	Unauthenticated:     http.StatusUnauthorized,
	InvalidCredentials:  http.StatusUnauthorized,
	WeakPassword:        http.StatusUnprocessableEntity,
	UsernameConflict:    http.StatusConflict,
	EmailConflict:       http.StatusConflict,
	RecipeNotFound:      http.StatusNotFound,
	RecipeNotOwned:      http.StatusForbidden,
	UserNotFound:        http.StatusNotFound,
	UnsupportedImage:    http.StatusUnprocessableEntity,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}

// Error is the body rendered for a failed request. ErrorID is the request id
// the failure was logged under.
type Error struct {
	Status  int               `json:"status"`
	Code    ErrorCode         `json:"code"`
	Message string            `json:"message"`
	ErrorID string            `json:"error_id"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func New(code ErrorCode, message, requestID string) *Error {
	return &Error{
		Status:  code.StatusCode(),
		Code:    code,
		Message: message,
		ErrorID: requestID,
	}
}

func Internal(requestID string) *Error {
	return New(InternalServerError, "Internal Server Error", requestID)
}
