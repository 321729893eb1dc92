package bootstrap

import (
	"log/slog"

	"hoster-calendar/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"upstream_base_url", cfg.Upstream.BaseURL,
		"upstream_timeout", cfg.Upstream.Timeout.String(),
		"calendar_timezone", cfg.Calendar.TimeZone,
		"horizon_months", cfg.Calendar.HorizonMonths,
		"cache_ttl", cfg.Calendar.CacheTTL.String(),
	)
}
