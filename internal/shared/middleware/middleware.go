package middleware

import (
	"context"
	"time"

	"duka/internal/auth"
	"duka/internal/shared/utils/response"
	"duka/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserID    = "user_id"
	ContextTokenID   = "token_id"
	ContextUserRole  = "user_role"
	ContextRequestID = "request_id"

	HeaderRequestID = "X-Request-ID"
)

// Verifier checks an Authorization header value
type Verifier interface {
	Verify(ctx context.Context, authorizationHeader string) (*auth.Claims, error)
}

// JWTAuth requires a valid, unrevoked access token
func JWTAuth(verifier Verifier, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifier.Verify(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			log.LogAuthFailure(c.Request.Context(), err.Error(), c.ClientIP())
			response.RespondError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set(ContextTokenID, claims.ID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// GetUserID returns the authenticated caller id, empty when absent
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// RequestID propagates or assigns X-Request-ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(ContextRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

// RequestLogger logs every request once it completes, plus one line per
// error the handlers attached with c.Error
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.LogHTTPRequest(c, time.Since(start))

		if len(c.Errors) == 0 {
			return
		}
		reqLog := log.WithRequestID(c.GetString(ContextRequestID))
		if userID := GetUserID(c); userID != "" {
			reqLog = reqLog.WithUserID(userID)
		}
		for _, e := range c.Errors {
			reqLog.LogHTTPError(c, e.Err, c.Writer.Status())
		}
	}
}
