package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"condo-parking/internal/handler/api"
	"condo-parking/internal/handler/middleware"
	"condo-parking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	bookingHandler *api.BookingHandler,
	unitHandler *api.UnitHandler,
	spotHandler *api.SpotHandler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, unitHandler, spotHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, bookingHandler *api.BookingHandler, unitHandler *api.UnitHandler, spotHandler *api.SpotHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.Cancel},
		})

		units := apiGroup.Group("/units")
		addRoutes(units, []route{
			{Method: http.MethodPost, Path: "", Handler: unitHandler.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: unitHandler.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: unitHandler.ChangeStatus},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: unitHandler.ListBookings},
		})

		spots := apiGroup.Group("/spots")
		addRoutes(spots, []route{
			{Method: http.MethodPost, Path: "", Handler: spotHandler.Create},
			{Method: http.MethodGet, Path: "", Handler: spotHandler.List},
		})
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
