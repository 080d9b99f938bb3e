package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"petcare/config"
	"petcare/infras/otel/mocks"
	cacheMocks "petcare/shared/cache/mocks"
	"petcare/transport/http/middleware"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	limited := chiMiddleware.RealIP(middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache).RateLimit()(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	))

	tests := []struct {
		name           string
		setupMock      func()
		wantCode       int
		wantRemaining  string
		wantRetryAfter string
	}{
		{
			name: "first request in window",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.1", 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name: "last request in window",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.1", 60).Return(int64(2), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name: "over the limit",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.1", 60).Return(int64(3), nil)
			},
			wantCode:       http.StatusTooManyRequests,
			wantRemaining:  "0",
			wantRetryAfter: "60",
		},
		{
			name: "cache unavailable lets the request through",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			req.Header.Set("X-Forwarded-For", "10.0.0.1, 192.168.0.1")

			rec := httptest.NewRecorder()
			limited.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.wantRetryAfter, rec.Header().Get("Retry-After"))
		})
	}
}

func TestRateLimit_KeysOnRemoteAddr(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 10

	mockCache.EXPECT().Incr(gomock.Any(), "limiter:172.16.0.9", 10).Return(int64(1), nil)

	limited := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache).RateLimit()(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/login", nil)
	req.RemoteAddr = "172.16.0.9:51234"

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	limited := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, mockCache).RateLimit()(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)

	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
