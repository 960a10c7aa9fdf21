package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
)

const serviceName = "server"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	User        *api.UserHandler
	Item        *api.ItemHandler
	Booking     *api.BookingHandler
	ItemRequest *api.ItemRequestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	httperr.UseJSONFieldNames()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(serviceName))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	identity := middleware.RequireSharerUserID()

	users := engine.Group("/users")
	addRoutes(users, []route{
		{Method: http.MethodPost, Path: "", Handler: h.User.Create},
		{Method: http.MethodGet, Path: "", Handler: h.User.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.User.Get},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.User.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.User.Delete},
	})

	items := engine.Group("/items")
	addRoutes(items, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Item.Create, Mw: []gin.HandlerFunc{identity}},
		{Method: http.MethodGet, Path: "", Handler: h.Item.ListOwn, Mw: []gin.HandlerFunc{identity}},
		{Method: http.MethodGet, Path: "/search", Handler: h.Item.Search},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Item.Get, Mw: []gin.HandlerFunc{identity}},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Item.Update, Mw: []gin.HandlerFunc{identity}},
		{Method: http.MethodPost, Path: "/:id/comment", Handler: h.Item.AddComment, Mw: []gin.HandlerFunc{identity}},
	})

	bookings := engine.Group("/bookings")
	bookings.Use(identity)
	addRoutes(bookings, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Booking.ListByBooker},
		{Method: http.MethodGet, Path: "/owner", Handler: h.Booking.ListByOwner},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Decide},
	})

	requests := engine.Group("/requests")
	requests.Use(identity)
	addRoutes(requests, []route{
		{Method: http.MethodPost, Path: "", Handler: h.ItemRequest.Create},
		{Method: http.MethodGet, Path: "", Handler: h.ItemRequest.ListOwn},
		{Method: http.MethodGet, Path: "/all", Handler: h.ItemRequest.ListOthers},
		{Method: http.MethodGet, Path: "/:id", Handler: h.ItemRequest.Get},
	})
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
