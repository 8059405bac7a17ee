package auth

import (
	"github.com/golang-jwt/jwt/v4"
)

// Token types carried in the "type" claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the payload of tokens minted by the user service.
// The caller id is the standard "sub" claim.
type Claims struct {
	Type  string `json:"type"`
	Fresh bool   `json:"fresh"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
