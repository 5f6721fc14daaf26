package router

import (
	"github.com/morechaitanya606/ucia/internal/application"
	"github.com/morechaitanya606/ucia/internal/container"
	pginfra "github.com/morechaitanya606/ucia/internal/infrastructure/postgres"
	handlers "github.com/morechaitanya606/ucia/internal/interface/http"
	"github.com/morechaitanya606/ucia/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	projectRepo := pginfra.NewProjectRepository(pool)
	updateRepo := pginfra.NewUpdateRepository(pool)
	messageRepo := pginfra.NewMessageRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	projectCache := application.NewRedisProjectCache(container.GetRedis(), cfg.ProjectCacheTTL, logger)
	projectSvc := application.NewProjectService(projectRepo, projectCache, logger,
		container.GetES(), cfg.ESProjectsIndex)
	updateSvc := application.NewUpdateService(updateRepo, projectRepo,
		container.GetGCS(), cfg.GCSBucket, logger)
	messageSvc := application.NewMessageService(messageRepo, container.GetRabbitPub(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), container.GetJWT()))
	r.Add(modules.NewProjectModule(handlers.NewProjectHandler(projectSvc, logger), container.GetJWT()))
	r.Add(modules.NewUpdateModule(handlers.NewUpdateHandler(updateSvc, logger), container.GetJWT()))
	r.Add(modules.NewMessageModule(handlers.NewMessageHandler(messageSvc, logger), container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
