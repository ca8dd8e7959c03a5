package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityawp/casaly/internal/container"
	handlers "github.com/adityawp/casaly/internal/interface/http"
	"github.com/adityawp/casaly/internal/interface/middleware"
	"github.com/adityawp/casaly/pkg/helpers"
)

// PropertyModule wires listing routes.
// Public: reads, search, counts. Protected: create/update/delete/inquiry.
type PropertyModule struct {
	Handler *handlers.PropertyHandler
	JWT     *helpers.JWTManager
}

func NewPropertyModule(h *handlers.PropertyHandler, jwt *helpers.JWTManager) *PropertyModule {
	return &PropertyModule{Handler: h, JWT: jwt}
}

func (m *PropertyModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	props := rg.Group("/properties")
	props.Use(readLimiter)
	{
		props.GET("", m.Handler.List)
		props.GET("/featured", m.Handler.Featured)
		props.GET("/types", m.Handler.TypeCounts)
		props.GET("/search", m.Handler.Search)
		props.GET("/:id", m.Handler.Get)
	}

	// Mutations require a valid bearer token; ownership is checked in the service.
	auth := rg.Group("/properties")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Create)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.POST("/:id/inquiry", middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil), m.Handler.Inquire)
	}
}
