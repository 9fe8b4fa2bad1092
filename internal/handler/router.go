package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parkhub/internal/handler/api"
	"parkhub/internal/handler/middleware"
	"parkhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	slotHandler *api.SlotHandler,
	rateHandler *api.RateHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, bookingHandler, slotHandler, rateHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	slotHandler *api.SlotHandler,
	rateHandler *api.RateHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/current", Handler: bookingHandler.Current},
				{Method: http.MethodGet, Path: "/mine", Handler: bookingHandler.Mine},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.ByID},
				{Method: http.MethodPost, Path: "/:id/exit", Handler: bookingHandler.Exit},
			})
		}

		slots := apiGroup.Group("/slots")
		slots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: slotHandler.List},
				{Method: http.MethodPost, Path: "", Handler: slotHandler.Create, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodPut, Path: "/:id", Handler: slotHandler.Update, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodDelete, Path: "/:id", Handler: slotHandler.Delete, Mw: []gin.HandlerFunc{requireAdmin}},
				{Method: http.MethodGet, Path: "/count", Handler: slotHandler.Count},
				{Method: http.MethodGet, Path: "/count/vacant", Handler: slotHandler.CountVacant},
				{Method: http.MethodGet, Path: "/count/occupied", Handler: slotHandler.CountOccupied},
				{Method: http.MethodGet, Path: "/count/reserved", Handler: slotHandler.CountReserved},
			})
		}

		rate := apiGroup.Group("/rate")
		rate.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rate, []route{
				{Method: http.MethodGet, Path: "", Handler: rateHandler.Get},
				{Method: http.MethodPut, Path: "", Handler: rateHandler.Set, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), requireAdmin)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/me", Handler: adminHandler.Me},
				{Method: http.MethodPut, Path: "/me", Handler: adminHandler.UpdateMe},
				{Method: http.MethodPut, Path: "/change-password", Handler: adminHandler.ChangePassword},
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
