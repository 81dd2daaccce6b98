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

// AuthModule wires the public account routes plus the authenticated
// verification resend.
// Public: POST /api/signup, GET /api/verify, POST /api/login,
//         POST /api/auth/reset/init, POST /api/auth/reset/confirm
// Protected (any role): POST /api/logout, POST /api/verify/resend

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetInitLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	resetConfirmLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.GET("/verify", verifyLimiter, m.Handler.Verify)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/reset/init", resetInitLimiter, m.Handler.ResetInit)
	rg.POST("/auth/reset/confirm", resetConfirmLimiter, m.Handler.ResetConfirm)

	auth := rg.Group("/")
	auth.Use(middleware.RequireRole(m.JWT, entity.RoleClient, entity.RoleAgent, entity.RoleAdmin))
	auth.Use(middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.POST("/verify/resend", m.Handler.VerifyResend)
	}
}
