package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityawp/casaly/internal/container"
	handlers "github.com/adityawp/casaly/internal/interface/http"
	"github.com/adityawp/casaly/internal/interface/middleware"
	"github.com/adityawp/casaly/pkg/helpers"
)

type UploadModule struct {
	Handler *handlers.UploadHandler
	JWT     *helpers.JWTManager
}

func NewUploadModule(h *handlers.UploadHandler, jwt *helpers.JWTManager) *UploadModule {
	return &UploadModule{Handler: h, JWT: jwt}
}

func (m *UploadModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/uploads")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("", m.Handler.Upload)
	}
}
