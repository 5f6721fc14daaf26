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

// ProjectModule wires project routes.
// Public: list, get by slug, search. Admin: create, update, delete.
type ProjectModule struct {
	Handler *handlers.ProjectHandler
	JWT     *helpers.JWTManager
}

func NewProjectModule(h *handlers.ProjectHandler, jwt *helpers.JWTManager) *ProjectModule {
	return &ProjectModule{Handler: h, JWT: jwt}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/projects", publicLimiter, m.Handler.List)
	rg.GET("/projects/search", publicLimiter, m.Handler.Search)
	rg.GET("/projects/:slug", publicLimiter, m.Handler.Get)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireRoles(entity.RoleAdmin))
	admin.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.POST("/projects", m.Handler.Create)
		admin.PUT("/projects/:slug", m.Handler.Update)
		admin.DELETE("/projects/:slug", m.Handler.Delete)
	}
}
