package bootstrap

import (
	"hoster-calendar/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	UpstreamModule,
	components.UseCaseModule,
	components.HandlerModule,
)
