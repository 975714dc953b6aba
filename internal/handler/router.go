package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flight-booking/internal/handler/api"
	"flight-booking/internal/handler/middleware"
	"flight-booking/internal/infra/idempotency"
	"flight-booking/internal/pkg/config"
	"flight-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterDeps struct {
	Config         config.Config
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	Idempotency    idempotency.Store
	FlightHandler  *api.FlightHandler
	BookingHandler *api.BookingHandler
}

func NewRouter(engine *gin.Engine, deps RouterDeps) {
	setupMiddleware(engine, deps)
	setupRoutes(engine, deps)
}

func setupMiddleware(engine *gin.Engine, deps RouterDeps) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(deps.Config.CORS))
	engine.Use(middleware.LoggingMiddleware(deps.Logger, deps.Config.Log))
	engine.Use(middleware.MetricsMiddleware(deps.Metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, deps RouterDeps) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	idem := middleware.Idempotency(deps.Idempotency, deps.Logger)

	apiGroup := engine.Group("/api")
	{
		flights := apiGroup.Group("/flights")
		{
			addRoutes(flights, []route{
				{Method: http.MethodGet, Path: "", Handler: deps.FlightHandler.List},
				{Method: http.MethodGet, Path: "/search", Handler: deps.FlightHandler.Search},
				{Method: http.MethodGet, Path: "/:flight_number/bookings", Handler: deps.FlightHandler.Bookings},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: deps.BookingHandler.List},
				{Method: http.MethodPost, Path: "", Handler: deps.BookingHandler.Create, Mw: []gin.HandlerFunc{idem}},
				{Method: http.MethodPut, Path: "/:confirmation_number", Handler: deps.BookingHandler.Amend, Mw: []gin.HandlerFunc{idem}},
				{Method: http.MethodDelete, Path: "/:confirmation_number", Handler: deps.BookingHandler.Cancel, Mw: []gin.HandlerFunc{idem}},
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

// Route middleware is registered in gin's own chain so c.Next() inside it runs the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		hs := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, hs...)
		case http.MethodPost:
			g.POST(r.Path, hs...)
		case http.MethodPut:
			g.PUT(r.Path, hs...)
		case http.MethodPatch:
			g.PATCH(r.Path, hs...)
		case http.MethodDelete:
			g.DELETE(r.Path, hs...)
		default:
			g.Any(r.Path, hs...)
		}
	}
}
