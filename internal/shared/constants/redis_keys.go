package constants

import "fmt"

// Redis key layout shared by the rate limiter, the token denylist and
// cmd/tokenctl. Pattern: duka:{module}:{identifier}:{params?}

const (
	KEY_PREFIX = "duka"
)

// ================== RATE LIMITING ==================

const (
	RATELIMIT_KEY = KEY_PREFIX + ":ratelimit:%s:%s" // clientIP, limit type
)

// ================== TOKEN DENYLIST ==================

// DENYLIST_REVOKED_VALUE marks a jti as revoked
const DENYLIST_REVOKED_VALUE = "true"

// ================== KEY BUILDERS ==================

func BuildRateLimitKey(clientIP, limitType string) string {
	return fmt.Sprintf(RATELIMIT_KEY, clientIP, limitType)
}

// BuildDenylistKey keeps the issuer's layout: an optional prefix followed
// by the bare jti.
func BuildDenylistKey(prefix, jti string) string {
	return prefix + jti
}
