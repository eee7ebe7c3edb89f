package auth

import (
	"fmt"
	"strings"
	"time"

	apperrors "dad-circles-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// RoleAdmin is the only role allowed on the admin API
	RoleAdmin = "admin"

	issuer          = "dad-circles-backend"
	DefaultTokenTTL = 12 * time.Hour
)

// AdminClaims represents the JWT claims carried by operator tokens
type AdminClaims struct {
	Email                string `json:"email" example:"ops@dadcircles.test"`
	Role                 string `json:"role" example:"admin"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenService signs and validates operator tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service. A zero ttl uses DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, apperrors.ErrJWTSecretUnset
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Generate mints an admin token for the given operator email
func (s *TokenService) Generate(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.NewValidationError("email", "is required")
	}

	now := s.now()
	claims := &AdminClaims{
		Email: email,
		Role:  RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses a token and checks its signature, expiry and issuer
func (s *TokenService) Validate(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}
