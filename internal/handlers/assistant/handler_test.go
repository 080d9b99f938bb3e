package assistant_test

import (
	"net/http"
	"net/http/httptest"
	genaiMocks "petcare/infras/genai/mocks"
	"petcare/infras/otel/mocks"
	"petcare/internal/domains/assistant/service"
	"petcare/internal/handlers/assistant"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc service.Assistant) http.Handler {
	handler := assistant.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return router
}

func TestHandler_Ask(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := genaiMocks.NewMockClient(ctrl)

	t.Run("answer", func(t *testing.T) {
		client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("Every four to six weeks.", nil)

		rec := httptest.NewRecorder()
		newRouter(service.New(client, mocks.NewOtel())).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/v1/assistant", strings.NewReader(`{"prompt":"How often should I groom a poodle?"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"response":"Every four to six weeks."}}`, rec.Body.String())
	})

	t.Run("empty prompt", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(service.New(client, mocks.NewOtel())).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/v1/assistant", strings.NewReader(`{"prompt":""}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Prompt is required"}`, rec.Body.String())
	})

	t.Run("not configured", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(service.New(nil, mocks.NewOtel())).ServeHTTP(rec,
			httptest.NewRequest(http.MethodPost, "/v1/assistant", strings.NewReader(`{"prompt":"hello"}`)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"error":"AI service is currently unavailable"}`, rec.Body.String())
	})
}
