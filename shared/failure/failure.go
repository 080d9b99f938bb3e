package failure

import (
	"errors"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Errors holds itemised messages when a request fails more than one rule at once.
type Failure struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

var InvalidCredentials = &Failure{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
var MissingToken = &Failure{Code: http.StatusUnauthorized, Message: "Access denied. No token provided."}
var InvalidToken = &Failure{Code: http.StatusForbidden, Message: "Invalid token."}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a bad request carrying every rule the input broke.
func Validation(msgs []string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  msgs,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// ServiceUnavailable returns a new Failure for a downstream dependency that is not configured or not reachable.
func ServiceUnavailable(msg string) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetErrors returns the itemised messages of a Failure, if any.
func GetErrors(err error) []string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Errors
	}

	return nil
}

// GetMessage returns the client-facing message of the Failure wrapped in err, or err's own text.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}
