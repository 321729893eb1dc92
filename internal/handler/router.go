package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hoster-calendar/internal/handler/api"
	"hoster-calendar/internal/handler/middleware"
	"hoster-calendar/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, calendarHandler *api.CalendarHandler, reservationHandler *api.ReservationHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, calendarHandler, reservationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, calendarHandler *api.CalendarHandler, reservationHandler *api.ReservationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		cal := apiGroup.Group("/calendar")
		{
			addRoutes(cal, []route{
				{Method: http.MethodGet, Path: "/window", Handler: calendarHandler.Window},
				{Method: http.MethodPost, Path: "/refresh", Handler: calendarHandler.Refresh},
			})
		}

		listings := apiGroup.Group("/listings")
		{
			addRoutes(listings, []route{
				{Method: http.MethodGet, Path: "", Handler: calendarHandler.ListListings},
				{Method: http.MethodGet, Path: "/:listingId/calendar", Handler: calendarHandler.GetMonth},
				{Method: http.MethodGet, Path: "/:listingId/calendar/days/:date", Handler: calendarHandler.GetDay},
				{Method: http.MethodPost, Path: "/:listingId/calendar/days/:date/toggle", Handler: calendarHandler.ToggleDay, Mw: []gin.HandlerFunc{middleware.RequireIdempotencyKeyFormat()}},
				{Method: http.MethodGet, Path: "/:listingId/next-check-in", Handler: calendarHandler.NextCheckIn},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "/:id/accept", Handler: reservationHandler.Accept, Mw: []gin.HandlerFunc{middleware.RequireIdempotencyKeyFormat()}},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: reservationHandler.Reject, Mw: []gin.HandlerFunc{middleware.RequireIdempotencyKeyFormat()}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
