package router

import (
	"github.com/adityawp/casaly/internal/application"
	"github.com/adityawp/casaly/internal/container"
	pginfra "github.com/adityawp/casaly/internal/infrastructure/postgres"
	handlers "github.com/adityawp/casaly/internal/interface/http"
	"github.com/adityawp/casaly/internal/router/modules"
)

// InitModules builds repositories, services, and handlers from the container
// singletons and registers all feature modules with the router registry.
// Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	propRepo := pginfra.NewPropertyRepository(container.GetPGPool())

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	propSvc := application.NewPropertyService(
		propRepo,
		userRepo,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		container.GetES(),
		cfg.ESPropertiesIndex,
		container.GetRabbitPub(),
		logger,
		cfg.TypeCountsTTL,
	)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewPropertyModule(handlers.NewPropertyHandler(propSvc, logger), container.GetJWT()))
	r.Add(modules.NewUploadModule(handlers.NewUploadHandler(propSvc, logger), container.GetJWT()))
	r.Add(modules.NewDebugModule())
}
