package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"duka/internal/shared/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type Service interface {
	// Verify checks an Authorization header value and returns the access
	// token claims. Failures are *Error values.
	Verify(ctx context.Context, authorizationHeader string) (*Claims, error)
	GenerateTokenPair(subject, role string) (*TokenPair, error)
}

type service struct {
	config  config.JWTConfig
	checker RevocationChecker
	now     func() time.Time
}

// NewService creates the token service. checker may be nil when the
// denylist is disabled.
func NewService(cfg config.JWTConfig, checker RevocationChecker) Service {
	return &service{
		config:  cfg,
		checker: checker,
		now:     time.Now,
	}
}

func (s *service) Verify(ctx context.Context, header string) (*Claims, error) {
	if header == "" {
		return nil, ErrMissingHeader
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, ErrBadHeader
	}

	claims, err := s.parse(parts[1])
	if err != nil {
		return nil, err
	}

	if claims.Type != TokenTypeAccess {
		return nil, ErrNotAccess
	}
	if claims.Subject == "" {
		return nil, ErrNoSubject
	}

	if err := s.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *service) parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("The specified alg value is not allowed: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})

	switch {
	case err == nil && token.Valid:
		return claims, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrBadSignature
	case err != nil:
		return nil, decodeError(err.Error())
	default:
		return nil, ErrBadSignature
	}
}

func (s *service) checkRevoked(ctx context.Context, claims *Claims) error {
	if s.checker == nil || !s.config.ChecksDenylistFor(claims.Type) {
		return nil
	}

	revoked, err := s.checker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDenylistDown, err)
	}
	if revoked {
		return ErrRevoked
	}
	return nil
}

func (s *service) GenerateTokenPair(subject, role string) (*TokenPair, error) {
	now := s.now()

	access, err := s.sign(subject, role, TokenTypeAccess, now, s.config.AccessExpiresIn)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(subject, role, TokenTypeRefresh, now, s.config.RefreshExpiresIn)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.config.AccessExpiresIn.Seconds()),
	}, nil
}

func (s *service) sign(subject, role, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Type:  tokenType,
		Fresh: false,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}
