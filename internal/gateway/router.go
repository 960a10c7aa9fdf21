package gateway

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "gateway"

func NewRouter(engine *gin.Engine, cfg config.GatewayConfig, h *Handler, limiter *RateLimiter) {
	httperr.UseJSONFieldNames()

	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(serviceName))
	}
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Gateway is healthy"})
	})
	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	identity := middleware.RequireSharerUserID()
	id := ValidateID()

	users := engine.Group("/users", limiter.Middleware())
	users.POST("", ValidateJSON[reqdto.CreateUserRequest](), h.Proxy)
	users.GET("", h.Proxy)
	users.GET("/:id", id, h.Proxy)
	users.PATCH("/:id", id, ValidateJSON[reqdto.UpdateUserRequest](), h.Proxy)
	users.DELETE("/:id", id, h.Proxy)

	items := engine.Group("/items", identity, limiter.Middleware())
	items.POST("", ValidateJSON[reqdto.CreateItemRequest](), h.Proxy)
	items.GET("", h.Proxy)
	items.GET("/search", ValidateQuery[reqdto.SearchItemsQuery](), h.Proxy)
	items.GET("/:id", id, h.Proxy)
	items.PATCH("/:id", id, ValidateJSON[reqdto.UpdateItemRequest](), h.Proxy)
	items.POST("/:id/comment", id, ValidateJSON[reqdto.CreateCommentRequest](), h.Proxy)

	bookings := engine.Group("/bookings", identity, limiter.Middleware())
	bookings.POST("", ValidateJSON[reqdto.CreateBookingRequest](), h.Proxy)
	bookings.GET("", ValidateQuery[reqdto.BookingStateQuery](), h.Proxy)
	bookings.GET("/owner", ValidateQuery[reqdto.BookingStateQuery](), h.Proxy)
	bookings.GET("/:id", id, h.Proxy)
	bookings.PATCH("/:id", id, ValidateQuery[reqdto.ApprovalQuery](), h.Proxy)

	requests := engine.Group("/requests", identity, limiter.Middleware())
	requests.POST("", ValidateJSON[reqdto.CreateItemRequestRequest](), h.Proxy)
	requests.GET("", h.Proxy)
	requests.GET("/all", ValidateQuery[reqdto.PageQuery](), h.Proxy)
	requests.GET("/:id", id, h.Proxy)
}
