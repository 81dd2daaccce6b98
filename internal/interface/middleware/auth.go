package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/helpers"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/response"
)

// Context keys populated on successful authorization.
const (
	CtxUserIDKey    = "userID"
	CtxUserRoleKey  = "userRole"
	CtxUserEmailKey = "userEmail"
	CtxUserNameKey  = "userName"
)

// RequireRole is the single authorization guard applied to every protected
// route group. It reads the session token from the session cookie (or an
// Authorization: Bearer header), validates it, and checks the caller's role
// against the allowed set. A missing token, an invalid or expired token,
// and a wrong role all abort with the same 401 "Unauthorized" so the
// response never reveals which check failed.
func RequireRole(jwt *helpers.JWTManager, roles ...entity.Role) gin.HandlerFunc {
	allowed := make(map[entity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			unauthorized(c)
			return
		}
		claims, err := jwt.ParseSessionToken(token)
		if err != nil {
			unauthorized(c)
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			unauthorized(c)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, string(claims.Role))
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserNameKey, claims.Name)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(helpers.SessionCookieName); err == nil && token != "" {
		return token
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

func unauthorized(c *gin.Context) {
	response.Error[any](c, http.StatusUnauthorized, "Unauthorized", nil)
	c.Abort()
}
