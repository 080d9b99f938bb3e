package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"petcare/infras/jwt"
	jwtMocks "petcare/infras/jwt/mocks"
	"petcare/infras/otel/mocks"
	adminMocks "petcare/internal/domains/admin/mocks"
	"petcare/internal/domains/admin/model/dto"
	bookingDto "petcare/internal/domains/booking/model/dto"
	"petcare/internal/handlers/admin"
	"petcare/shared/constant"
	"petcare/shared/failure"
	"petcare/transport/http/middleware"
	"strings"
	"testing"

	goJWT "github.com/golang-jwt/jwt/v5"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	otel   *mocks.Otel
	svc    *adminMocks.MockAdmin
	jwt    *jwtMocks.MockJWT
	router http.Handler
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otel := mocks.NewOtel()

	f := fixture{
		otel: otel,
		svc:  adminMocks.NewMockAdmin(ctrl),
		jwt:  jwtMocks.NewMockJWT(ctrl),
	}

	handler := admin.New(f.svc, middleware.NewAuthMiddleware(f.jwt, otel), otel)

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)
	f.router = router

	return f
}

func (f fixture) allow(token string) {
	f.jwt.EXPECT().ValidateToken(token).Return(&jwt.Claims{
		RegisteredClaims: goJWT.RegisteredClaims{ID: "t-1", Subject: "admin"},
	}, nil)
}

func TestHandler_Login(t *testing.T) {
	f := newFixture(t)

	t.Run("token issued", func(t *testing.T) {
		f.svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Username: "admin", Password: "secret"}).
			Return(dto.LoginResponse{Token: "signed", TokenType: "Bearer", ExpiresIn: 3600}, nil)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/login", strings.NewReader(`{"username":"admin","password":"secret"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"token":"signed","tokenType":"Bearer","expiresIn":3600}}`, rec.Body.String())

		span := f.otel.Span(constant.OtelHandlerScopeName + ".Login")
		if assert.NotNil(t, span) {
			assert.Equal(t, []string{"Admin logged in"}, span.Events())
			assert.True(t, span.Ended())
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		f.svc.EXPECT().Login(gomock.Any(), gomock.Any()).Return(dto.LoginResponse{}, failure.InvalidCredentials)

		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/login", strings.NewReader(`{"username":"admin","password":"nope"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
	})
}

func TestHandler_Guard(t *testing.T) {
	f := newFixture(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/admin/bookings"},
		{http.MethodGet, "/v1/admin/stats"},
		{http.MethodPut, "/v1/admin/bookings/abc/status"},
	}

	for _, p := range paths {
		t.Run("no token "+p.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, httptest.NewRequest(p.method, p.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Access denied. No token provided."}`, rec.Body.String())
		})

		t.Run("bad token "+p.path, func(t *testing.T) {
			f.jwt.EXPECT().ValidateToken("forged").Return(nil, jwt.ErrInvalidToken)

			req := httptest.NewRequest(p.method, p.path, nil)
			req.Header.Set(constant.RequestHeaderAuthorization, "Bearer forged")

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.JSONEq(t, `{"error":"Invalid token."}`, rec.Body.String())
		})
	}
}

func TestHandler_GetStats(t *testing.T) {
	f := newFixture(t)
	f.allow("good")

	f.svc.EXPECT().Stats(gomock.Any()).Return(dto.StatsResponse{Total: 3, Pending: 2, Cancelled: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/stats", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer good")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"total":3,"pending":2,"confirmed":0,"completed":0,"cancelled":1}}`, rec.Body.String())
}

func TestHandler_SetBookingStatus(t *testing.T) {
	f := newFixture(t)
	f.allow("good")

	const id = "7d1c51c4-8f0e-4d0b-9a8e-3b5c1f2e4a60"

	f.svc.EXPECT().SetStatus(gomock.Any(), id, dto.SetStatusRequest{Status: "completed"}).DoAndReturn(
		func(ctx context.Context, id string, req dto.SetStatusRequest) (dto.BookingEntry, error) {
			assert.Equal(t, "admin", ctx.Value(constant.ContextKeyAdminSubject))

			return dto.BookingEntry{ID: id, BookingEntry: bookingDto.BookingEntry{Status: req.Status}}, nil
		},
	)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/bookings/"+id+"/status", strings.NewReader(`{"status":"completed"}`))
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer good")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`+id+`"`)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestHandler_GetAllBookings(t *testing.T) {
	f := newFixture(t)
	f.allow("good")

	f.svc.EXPECT().ListAllBookings(gomock.Any()).Return([]dto.BookingEntry{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/bookings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer good")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}
