package middleware

import (
	"net/http"

	"hoster-calendar/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	IdempotencyHeader    = "Idempotency-Key"
	ctxIdempotencyKeyKey = "idempotency_key"
)

// RequireIdempotencyKeyFormat rejects a malformed Idempotency-Key and issues one
// when the client sent none. The key in use is echoed back so a client can retry
// the same mutation.
func RequireIdempotencyKeyFormat() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := uuid.New()
		if raw := c.GetHeader(IdempotencyHeader); raw != "" {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
				return
			}
			key = parsed
		}

		c.Set(ctxIdempotencyKeyKey, key)
		c.Header(IdempotencyHeader, key.String())
		c.Next()
	}
}

// GetIdempotencyKey returns uuid.Nil when the route is not behind RequireIdempotencyKeyFormat.
func GetIdempotencyKey(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(ctxIdempotencyKeyKey); exists {
		if key, ok := v.(uuid.UUID); ok {
			return key
		}
	}
	return uuid.Nil
}
