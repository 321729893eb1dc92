package upstream

import (
	"context"
	"errors"
	"log/slog"

	"hoster-calendar/internal/infra"
	"hoster-calendar/internal/pkg/config"

	"github.com/sony/gobreaker"
)

// NewBreaker trips after BreakerMaxFailures consecutive transient failures and
// lets a single probe through once BreakerOpenTimeout has elapsed.
func NewBreaker(name string, cfg config.UpstreamConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}
	return gobreaker.NewCircuitBreaker(
		gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     cfg.BreakerOpenTimeout,
			Interval:    0,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxFailures
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			},
			IsSuccessful: isBreakerSuccess,
		},
	)
}

func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	// the caller went away; says nothing about the backend
	if errors.Is(err, context.Canceled) {
		return true
	}
	var ue infra.UpstreamError
	if errors.As(err, &ue) {
		return !ue.Transient()
	}
	return false
}
