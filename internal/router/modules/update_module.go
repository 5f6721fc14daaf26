package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/morechaitanya606/ucia/internal/container"
	"github.com/morechaitanya606/ucia/internal/domain/entity"
	handlers "github.com/morechaitanya606/ucia/internal/interface/http"
	"github.com/morechaitanya606/ucia/internal/interface/middleware"
	"github.com/morechaitanya606/ucia/pkg/helpers"
)

// UpdateModule wires project-update routes.
// Public: list by project slug. Editors and admins author content; deletion
// stays admin-only.
type UpdateModule struct {
	Handler *handlers.UpdateHandler
	JWT     *helpers.JWTManager
}

func NewUpdateModule(h *handlers.UpdateHandler, jwt *helpers.JWTManager) *UpdateModule {
	return &UpdateModule{Handler: h, JWT: jwt}
}

func (m *UpdateModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/updates/project/:slug", publicLimiter, m.Handler.ListByProject)

	userLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil)

	authors := rg.Group("/")
	authors.Use(middleware.Auth(m.JWT))
	authors.Use(middleware.RequireRoles(entity.RoleAdmin, entity.RoleEditor))
	authors.Use(userLimiter)
	{
		authors.POST("/updates", m.Handler.Create)
		authors.PUT("/updates/:id", m.Handler.Edit)
		authors.POST("/updates/:id/media", m.Handler.UploadMedia)
	}

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireRoles(entity.RoleAdmin))
	admin.Use(userLimiter)
	{
		admin.DELETE("/updates/:id", m.Handler.Delete)
	}
}
