package response

import (
	"bytes"
	"encoding/json"
	"net/http"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/shared/logger"
)

// Data wraps a successful payload.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error is the body of every failed request. Errors lists each broken rule on validation
// failures.
type Error struct {
	Error  *string  `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	write(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError answers with the failure carried by err. Server-side errors other than 503 are
// logged with their stack and answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		logger.ErrorWithStack(err)

		withErrorMessage(writer, code, constant.ResponseErrorUnexpected, nil)

		return
	}

	withErrorMessage(writer, code, failure.GetMessage(err), failure.GetErrors(err))
}

func WithRouteNotFound(writer http.ResponseWriter) {
	withErrorMessage(writer, http.StatusNotFound, constant.ResponseErrorRouteNotFound, nil)
}

func WithMethodNotAllowed(writer http.ResponseWriter) {
	withErrorMessage(writer, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed, nil)
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func withErrorMessage(writer http.ResponseWriter, code int, message string, errs []string) {
	write(writer, code, Error{Error: &message, Errors: errs})
}

// write encodes before touching the writer so a payload that cannot be encoded still gets a
// clean 500.
func write(writer http.ResponseWriter, code int, payload any) {
	var body bytes.Buffer

	encoder := json.NewEncoder(&body)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(payload); err != nil {
		logger.ErrorWithStack(err)

		http.Error(writer, constant.ResponseErrorUnexpected, http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body.Bytes()); err != nil {
		logger.ErrorWithStack(err)
	}
}
