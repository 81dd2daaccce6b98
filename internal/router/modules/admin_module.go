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

// AdminModule wires the ADMIN-only backoffice routes.

type AdminModule struct {
	Alerts       *handlers.AlertHandler
	Reservations *handlers.ReservationHandler
	JWT          *helpers.JWTManager
}

func NewAdminModule(alerts *handlers.AlertHandler, reservations *handlers.ReservationHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Alerts: alerts, Reservations: reservations, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RequireRole(m.JWT, entity.RoleAdmin))
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		admin.GET("/alerts", m.Alerts.List)
		admin.PUT("/alerts/:id", m.Alerts.Update)
		admin.DELETE("/alerts/:id", m.Alerts.Delete)
		admin.POST("/alerts", m.Alerts.MarkAllRead)
		admin.GET("/pending-reservations", m.Reservations.Pending)
	}
}
