package auth

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"duka/internal/shared/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type stubChecker struct {
	revoked map[string]bool
	err     error
	asked   []string
}

func (s *stubChecker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.asked = append(s.asked, tokenID)
	return s.revoked[tokenID], s.err
}

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:           testSecret,
		DenylistEnabled:  true,
		DenylistChecks:   []string{TokenTypeAccess, TokenTypeRefresh},
		AccessExpiresIn:  15 * time.Minute,
		RefreshExpiresIn: 24 * time.Hour,
	}
}

func signed(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func accessClaims(sub, jti string, exp time.Time) Claims {
	return Claims{
		Type: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   sub,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}

func TestVerify_AcceptsAccessToken(t *testing.T) {
	checker := &stubChecker{}
	svc := NewService(testConfig(), checker)

	raw := signed(t, accessClaims("user-1", "jti-1", time.Now().Add(time.Hour)), testSecret)
	claims, err := svc.Verify(context.Background(), "Bearer "+raw)

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, []string{"jti-1"}, checker.asked)
}

func TestVerify_Failures(t *testing.T) {
	svc := NewService(testConfig(), &stubChecker{revoked: map[string]bool{"gone": true}})
	future := time.Now().Add(time.Hour)

	refresh := accessClaims("user-1", "jti-2", future)
	refresh.Type = TokenTypeRefresh

	tests := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{"missing header", "", http.StatusUnauthorized, "Missing Authorization Header"},
		{"wrong scheme", "Token abc", http.StatusUnprocessableEntity, "Bad Authorization header. Expected value 'Bearer <JWT>'"},
		{"too many parts", "Bearer a b", http.StatusUnprocessableEntity, "Bad Authorization header. Expected value 'Bearer <JWT>'"},
		{"expired", "Bearer " + signed(t, accessClaims("u", "j", time.Now().Add(-time.Minute)), testSecret), http.StatusUnprocessableEntity, "Signature has expired"},
		{"bad signature", "Bearer " + signed(t, accessClaims("u", "j", future), "other"), http.StatusUnprocessableEntity, "Signature verification failed"},
		{"refresh token", "Bearer " + signed(t, refresh, testSecret), http.StatusUnprocessableEntity, "Only access tokens are allowed"},
		{"no subject", "Bearer " + signed(t, accessClaims("", "j", future), testSecret), http.StatusUnprocessableEntity, "Token is missing the sub claim"},
		{"revoked", "Bearer " + signed(t, accessClaims("u", "gone", future), testSecret), http.StatusUnauthorized, "Token has been revoked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(context.Background(), tt.header)

			var authErr *Error
			require.True(t, errors.As(err, &authErr), "got %v", err)
			assert.Equal(t, tt.status, authErr.StatusCode())
			assert.Equal(t, tt.message, authErr.Error())
		})
	}
}

func TestVerify_MalformedTokenIs422(t *testing.T) {
	_, err := NewService(testConfig(), nil).Verify(context.Background(), "Bearer not.a.jwt")

	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnprocessableEntity, authErr.StatusCode())
}

func TestVerify_DenylistStoreFailure(t *testing.T) {
	svc := NewService(testConfig(), &stubChecker{err: errors.New("connection refused")})

	raw := signed(t, accessClaims("user-1", "jti-1", time.Now().Add(time.Hour)), testSecret)
	_, err := svc.Verify(context.Background(), "Bearer "+raw)

	assert.ErrorIs(t, err, ErrDenylistDown)
}

func TestVerify_DenylistDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.DenylistEnabled = false
	checker := &stubChecker{revoked: map[string]bool{"jti-1": true}}

	raw := signed(t, accessClaims("user-1", "jti-1", time.Now().Add(time.Hour)), testSecret)
	_, err := NewService(cfg, checker).Verify(context.Background(), "Bearer "+raw)

	require.NoError(t, err)
	assert.Empty(t, checker.asked)
}

func TestGenerateTokenPair_RoundTrip(t *testing.T) {
	svc := NewService(testConfig(), &stubChecker{})

	pair, err := svc.GenerateTokenPair("user-7", "operator")
	require.NoError(t, err)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.Verify(context.Background(), "Bearer "+pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims.Subject)
	assert.Equal(t, "operator", claims.Role)
	assert.NotEmpty(t, claims.ID)

	_, err = svc.Verify(context.Background(), "Bearer "+pair.RefreshToken)
	assert.ErrorIs(t, err, ErrNotAccess)
}
