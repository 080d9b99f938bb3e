package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"petcare/config"
	"petcare/infras/otel/mocks"
	jwtMocks "petcare/infras/jwt/mocks"
	adminMocks "petcare/internal/domains/admin/mocks"
	catalogRepo "petcare/internal/domains/catalog/repository"
	catalogService "petcare/internal/domains/catalog/service"
	"petcare/internal/handlers/admin"
	"petcare/internal/handlers/catalog"
	cacheMocks "petcare/shared/cache/mocks"
	"petcare/transport/http/middleware"
	"petcare/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newServer(t *testing.T, closers Closers) *HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := mocks.NewOtel()
	cfg := &config.Config{}
	cfg.App.Name = "petcare"

	handlers := router.DomainHandlers{
		Admin:   admin.New(adminMocks.NewMockAdmin(ctrl), middleware.NewAuthMiddleware(jwtMocks.NewMockJWT(ctrl), otel), otel),
		Catalog: catalog.New(catalogService.New(catalogRepo.New(), otel), otel),
	}

	return New(cfg, router.New(handlers), middleware.NewAppMiddleware(otel, cfg, cacheMocks.NewMockRedisCache(ctrl)), closers)
}

func TestHTTP_Routes(t *testing.T) {
	handler := newServer(t, nil).Handler()

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK, wantBody: `{"message":"OK"}`},
		{name: "unknown route", method: http.MethodGet, path: "/v1/nowhere", wantCode: http.StatusNotFound, wantBody: `{"error":"Route not found"}`},
		{name: "wrong method", method: http.MethodDelete, path: "/health", wantCode: http.StatusMethodNotAllowed, wantBody: `{"error":"Method not allowed"}`},
		{name: "admin guarded", method: http.MethodGet, path: "/v1/admin/stats", wantCode: http.StatusUnauthorized, wantBody: `{"error":"Access denied. No token provided."}`},
		{name: "mounted under v1", method: http.MethodGet, path: "/v1/catalog/services", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHTTP_HealthDuringShutdown(t *testing.T) {
	server := newServer(t, nil)
	handler := server.Handler()

	assert.Equal(t, ServerStateReady, server.State())

	for _, state := range []ServerState{ServerStateInGracePeriod, ServerStateInCleanupPeriod} {
		server.state.Store(int32(state))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())
	}
}

func TestHTTP_CloseReleasesInOrder(t *testing.T) {
	var order []string

	record := func(name string, err error) closerFunc {
		return func() error {
			order = append(order, name)

			return err
		}
	}

	server := newServer(t, Closers{
		record("events", nil),
		nil,
		record("cache", errors.New("already closed")),
		record("database", nil),
	})

	server.close()

	assert.Equal(t, []string{"events", "cache", "database"}, order)
}

func TestHTTP_SetupIsIdempotent(t *testing.T) {
	server := newServer(t, nil)

	first := server.Handler()
	second := server.Handler()

	assert.Same(t, first, second)
}
