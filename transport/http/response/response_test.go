package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"petcare/shared/failure"
	"petcare/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "validation failure lists every message",
			err:      failure.Validation([]string{"petName is required", "phone is required"}),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Validation failed","errors":["petName is required","phone is required"]}`,
		},
		{
			name:     "not found",
			err:      failure.NotFound("Booking not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"Booking not found"}`,
		},
		{
			name:     "internal details are hidden",
			err:      errors.New("pq: password authentication failed for user \"postgres\""),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"An unexpected error occurred"}`,
		},
		{
			name:     "unavailable dependency keeps its message",
			err:      failure.ServiceUnavailable("AI service is currently unavailable"),
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"AI service is currently unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"referenceNumber": "BK123456ABCD"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"referenceNumber":"BK123456ABCD"}}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMessage(rec, http.StatusOK, "OK")

	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
}

func TestWithRouteNotFound(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRouteNotFound(rec)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
}

func TestWithMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithMethodNotAllowed(rec)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestWithJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestWithJSON_KeepsAmpersands(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, map[string]string{"notes": "Bath & brush <gentle>"})

	assert.Contains(t, rec.Body.String(), `"Bath & brush <gentle>"`)
}
