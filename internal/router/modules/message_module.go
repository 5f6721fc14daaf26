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

// MessageModule wires the contact form and the admin message inbox.
type MessageModule struct {
	Handler *handlers.MessageHandler
	JWT     *helpers.JWTManager
}

func NewMessageModule(h *handlers.MessageHandler, jwt *helpers.JWTManager) *MessageModule {
	return &MessageModule{Handler: h, JWT: jwt}
}

func (m *MessageModule) Register(rg *gin.RouterGroup) {
	// tight per-IP limit on the public form
	contactLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/contact", contactLimiter, m.Handler.Submit)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT))
	admin.Use(middleware.RequireRoles(entity.RoleAdmin))
	admin.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.GET("/messages", m.Handler.List)
		admin.PATCH("/messages/:id/status", m.Handler.SetStatus)
		admin.DELETE("/messages/:id", m.Handler.Delete)
	}
}
