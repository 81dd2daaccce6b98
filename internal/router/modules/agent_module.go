package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/container"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	handlers "github.com/oualidazemray/Bellavista1.0-sub002/internal/interface/http"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/interface/middleware"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/helpers"
)

// AgentModule wires the AGENT-only routes.

type AgentModule struct {
	Clients *handlers.ClientHandler
	JWT     *helpers.JWTManager
}

func NewAgentModule(clients *handlers.ClientHandler, jwt *helpers.JWTManager) *AgentModule {
	return &AgentModule{Clients: clients, JWT: jwt}
}

func (m *AgentModule) Register(rg *gin.RouterGroup) {
	agent := rg.Group("/agent")
	agent.Use(middleware.RequireRole(m.JWT, entity.RoleAgent))
	agent.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		agent.GET("/clients/search", m.Clients.Search)
	}
}
