//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"hoster-calendar/cmd/bootstrap"
	"hoster-calendar/cmd/bootstrap/components"
	"hoster-calendar/internal/pkg/config"
	"hoster-calendar/tests/common/httptest"
	"hoster-calendar/tests/common/upstreamtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*upstreamtest.Server, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	backend := upstreamtest.New(t)

	router, cfg, app := buildE2EApp(backend.URL())
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return backend, router, cfg
}

// ------------------------------------------------------------
// App wired like production, pointed at the in-memory backend
// ------------------------------------------------------------
func buildE2EApp(baseURL string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(baseURL)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.UpstreamModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app started without a router")
	}

	return router, cfg, app
}

func createTestConfig(baseURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Upstream.BaseURL = baseURL
	// failure cases must not leave the breaker open for the next subtest
	testConfig.Upstream.BreakerMaxFailures = 100
	return testConfig
}

// ------------------------------------------------------------
// Setup shared by e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	Backend *upstreamtest.Server
	Config  config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	backend, router, cfg := setupE2EEnvironment(t)
	s.Backend = backend
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config not loaded")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Backend.Reset()
}

// RefreshCalendar drops the service's cached snapshot so the next read sees the
// backend's current data.
func (s *SharedSuite) RefreshCalendar() {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/calendar/refresh", nil)
	require.Equal(t, http.StatusOK, w.Code, "refresh failed: %s", w.Body.String())
}
