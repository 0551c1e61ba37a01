package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourmate/internal/handler/api"
	"tourmate/internal/handler/middleware"
	"tourmate/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, guideHandler *api.GuideHandler, destinationHandler *api.DestinationHandler, tourHandler *api.TourHandler, applicationHandler *api.ApplicationHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, guideHandler, destinationHandler, tourHandler, applicationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, guideHandler *api.GuideHandler, destinationHandler *api.DestinationHandler, tourHandler *api.TourHandler, applicationHandler *api.ApplicationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		guides := apiGroup.Group("/guides")
		{
			addRoutes(guides, []route{
				{Method: http.MethodGet, Path: "", Handler: guideHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: guideHandler.Get},
			})
		}

		destinations := apiGroup.Group("/destinations")
		{
			addRoutes(destinations, []route{
				{Method: http.MethodGet, Path: "", Handler: destinationHandler.List},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: destinationHandler.Reviews},
			})
		}

		tours := apiGroup.Group("/tours")
		{
			addRoutes(tours, []route{
				{Method: http.MethodGet, Path: "", Handler: tourHandler.List},
				{Method: http.MethodPost, Path: "", Handler: tourHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: tourHandler.Get},
				{Method: http.MethodPut, Path: "/:id/review", Handler: tourHandler.SubmitReview},
			})
		}

		applications := apiGroup.Group("/guide-applications")
		{
			addRoutes(applications, []route{
				{Method: http.MethodPost, Path: "", Handler: applicationHandler.Create},
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
