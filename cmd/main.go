package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"hoster-calendar/cmd/bootstrap"
	"hoster-calendar/internal/domain/calendar"
	"hoster-calendar/internal/pkg/config"
	"hoster-calendar/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

func init() {
	// Never expose debug info on misconfiguration
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hoster-calendar",
		Short:         "Availability calendar and booking window service for short-term-rental hosts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newWindowCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the calendar API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func newWindowCmd() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Print the booking window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadCalendarConfig()
			if err != nil {
				return err
			}
			now := time.Now().In(cfg.Location())
			if at != "" {
				d, err := calendar.ParseDate(at)
				if err != nil {
					return err
				}
				now = time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, cfg.Location())
			}

			w := calendar.NewBookingWindow(cfg.HorizonMonths, cfg.LabelOffsetMonths)
			v := queries.NewWindowView(w, now)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "today:           %s\n", v.Today)
			fmt.Fprintf(out, "current month:   %s\n", v.CurrentMonth)
			fmt.Fprintf(out, "navigable until: %s (%d months)\n", v.MaximumNavigableMonth, v.HorizonMonths)
			fmt.Fprintf(out, "bookable until:  %s (%s)\n", v.BookableUntil, v.BookableUntilLabel)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "evaluate the window as of this date (YYYY-MM-DD)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hoster-calendar %s (commit=%s, built=%s)\n", Version, CommitSHA, BuildDate)
		},
	}
}

// @title           hoster-calendar
// @version         1.0
// @description     Per-listing availability, booking window and day toggling over the host backend.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return srv.Shutdown(ctx)
		},
	})
}

func serve(ctx context.Context) error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	slog.Info("application stopped")
	return nil
}
