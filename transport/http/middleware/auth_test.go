package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"petcare/infras/jwt"
	jwtMocks "petcare/infras/jwt/mocks"
	"petcare/infras/otel/mocks"
	"petcare/shared/constant"
	"petcare/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	tracer := mocks.NewOtel()
	guard := middleware.NewAuthMiddleware(mockJWT, tracer)

	var subject string

	protected := guard.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ = r.Context().Value(constant.ContextKeyAdminSubject).(string)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name      string
		header    string
		setupMock func()
		wantCode  int
		wantBody  string
	}{
		{
			name:      "no header",
			setupMock: func() {},
			wantCode:  http.StatusUnauthorized,
			wantBody:  `{"error":"Access denied. No token provided."}`,
		},
		{
			name:      "wrong scheme",
			header:    "Basic YWRtaW46cGFzcw==",
			setupMock: func() {},
			wantCode:  http.StatusForbidden,
			wantBody:  `{"error":"Invalid token."}`,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("expired").Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"Invalid token."}`,
		},
		{
			name:   "bad signature",
			header: "Bearer forged",
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("forged").Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"Invalid token."}`,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func() {
				claims := &jwt.Claims{}
				claims.ID = "tid"
				claims.Subject = "admin"
				mockJWT.EXPECT().ValidateToken("good").Return(claims, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()
			subject = ""

			req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			span := tracer.Span("auth.middleware")
			if !assert.NotNil(t, span) {
				return
			}

			assert.True(t, span.Ended())
			assert.Equal(t, http.MethodGet, span.Attribute("http.method"))

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				assert.Empty(t, subject)
				assert.Len(t, span.Errors(), 1)
			} else {
				assert.Equal(t, "admin", subject)
				assert.Empty(t, span.Errors())
			}
		})
	}
}
