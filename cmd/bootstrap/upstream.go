package bootstrap

import (
	"log/slog"

	"hoster-calendar/internal/infra/upstream"
	"hoster-calendar/internal/pkg/clock"
	"hoster-calendar/internal/pkg/config"
	"hoster-calendar/internal/usecase/shared"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			NewUpstreamClient,
			fx.As(new(shared.CalendarGateway)),
		),
	),
)

func NewUpstreamClient(cfg config.Config, clk clock.Clock, logger *slog.Logger) *upstream.Client {
	return upstream.NewClient(cfg.Upstream, clk, logger)
}
