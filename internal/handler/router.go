package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayhub/internal/handler/api"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Property *api.PropertyHandler
	Booking  *api.BookingHandler
	Calendar *api.CalendarHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// public feed polled by OTAs; the token is the credential
	engine.GET("/calendar/:token", h.Calendar.ExportByToken)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		properties := apiGroup.Group("/properties")
		properties.Use(authMiddleware.RequireAuth())
		{
			addRoutes(properties, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Property.CreateProperty},
				{Method: http.MethodGet, Path: "", Handler: h.Property.ListProperties},
				{Method: http.MethodPost, Path: "/match", Handler: h.Property.MatchListing},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Property.GetProperty},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Property.UpdateProperty},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Property.DeleteProperty},
				{Method: http.MethodPost, Path: "/:id/export-token", Handler: h.Property.RotateExportToken},
			})

			addRoutes(properties, []route{
				{Method: http.MethodPost, Path: "/:id/bookings", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.ListBookings},
				{Method: http.MethodGet, Path: "/:id/bookings/:bookingId", Handler: h.Booking.GetBooking},
				{Method: http.MethodPatch, Path: "/:id/bookings/:bookingId", Handler: h.Booking.UpdateBooking},
				{Method: http.MethodDelete, Path: "/:id/bookings/:bookingId", Handler: h.Booking.DeleteBooking},
			})

			addRoutes(properties, []route{
				{Method: http.MethodGet, Path: "/:id/calendar.ics", Handler: h.Calendar.ExportProperty},
				{Method: http.MethodGet, Path: "/:id/calendar-sources", Handler: h.Calendar.ListSources},
				{Method: http.MethodPost, Path: "/:id/calendar-sources", Handler: h.Calendar.AddSource},
				{Method: http.MethodDelete, Path: "/:id/calendar-sources/:sourceId", Handler: h.Calendar.RemoveSource},
				{Method: http.MethodPost, Path: "/:id/calendar-sources/:sourceId/sync", Handler: h.Calendar.SyncSource},
				{Method: http.MethodGet, Path: "/:id/availabilities", Handler: h.Calendar.ListAvailabilities},
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
