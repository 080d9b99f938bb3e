package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"petcare/config"
	"petcare/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenType    = "Bearer"
	bearerPrefix = tokenType + " "
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrMissingToken = errors.New("authorization header is required")

	errNoSecret = errors.New("jwt access secret is not configured")
)

// Claims are the registered claims only. ID is unique per issued token.
type Claims struct {
	jwt.RegisteredClaims
}

// Token is the signed admin assertion handed out on login.
type Token struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

type JWT interface {
	GenerateToken(subject string) (*Token, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Service signs and checks admin tokens with the shared HMAC secret.
type Service struct {
	config *config.Config
	clock  timezone.Clock
}

func New(cfg *config.Config, clock timezone.Clock) JWT {
	return &Service{
		config: cfg,
		clock:  clock,
	}
}

// GenerateToken signs an HS256 access token for subject, valid for JWT_ACCESS_EXPIRE_MIN minutes.
func (s *Service) GenerateToken(subject string) (*Token, error) {
	if s.config.JWT.AccessSecret == "" {
		return nil, errNoSecret
	}

	issuedAt := s.clock()
	lifetime := time.Duration(s.config.JWT.AccessExpireMin) * time.Minute

	claims := Claims{jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.config.App.Name,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
	}}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.JWT.AccessSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresIn:   int64(lifetime.Seconds()),
	}, nil
}

// ValidateToken accepts only HS256 tokens from this issuer that carry an expiry and a subject.
// Expiry is reported as ErrExpiredToken; every other failure is ErrInvalidToken.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if s.config.JWT.AccessSecret == "" {
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return []byte(s.config.JWT.AccessSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.App.Name),
		jwt.WithTimeFunc(s.clock),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the credentials of a Bearer Authorization header. The scheme
// is matched case-insensitively.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrInvalidToken
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidToken
	}

	return token, nil
}
