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

// AuthModule registers the authentication endpoints.
// Login is public and tightly rate-limited; registration is not self-service
// and requires an authenticated admin (the first admin is created by cmd/seed).
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireRoles(entity.RoleAdmin))
	admin.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.POST("/auth/register", m.Handler.Register)
	}
}
