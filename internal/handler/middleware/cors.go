package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"hoster-calendar/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always lets browsers send and read Idempotency-Key, whatever
// the configured header lists say.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     withValue(cfg.AllowMethods, http.MethodPost),
		AllowHeaders:     withValue(cfg.AllowHeaders, IdempotencyHeader),
		ExposeHeaders:    withValue(cfg.ExposeHeaders, IdempotencyHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}

func withValue(values []string, v string) []string {
	for _, existing := range values {
		if http.CanonicalHeaderKey(existing) == http.CanonicalHeaderKey(v) {
			return values
		}
	}
	return append(slices.Clone(values), v)
}
