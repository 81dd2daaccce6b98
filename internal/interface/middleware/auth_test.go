package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/interface/middleware"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/helpers"
)

func newGuardedRouter(t *testing.T, jwt *helpers.JWTManager, roles ...entity.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.RequireRole(jwt, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":  c.GetString(middleware.CtxUserIDKey),
			"role": c.GetString(middleware.CtxUserRoleKey),
		})
	})
	return r
}

func tokenFor(t *testing.T, jwt *helpers.JWTManager, role entity.Role) string {
	t.Helper()
	token, _, err := jwt.GenerateSessionToken(&entity.User{
		ID:    "user-1",
		Email: "user@example.com",
		Name:  "User One",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestRequireRoleNoToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newGuardedRouter(t, jwt, entity.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestRequireRoleInvalidToken(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newGuardedRouter(t, jwt, entity.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: "garbage"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleExpiredToken(t *testing.T) {
	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	token := tokenFor(t, expired, entity.RoleAdmin)

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newGuardedRouter(t, jwt, entity.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A valid CLIENT token on an ADMIN-only route is rejected the same way as
// a missing one, whatever the request carries otherwise.
func TestRequireRoleWrongRole(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newGuardedRouter(t, jwt, entity.RoleAdmin)
	token := tokenFor(t, jwt, entity.RoleClient)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newGuardedRouter(t, jwt, entity.RoleAdmin, entity.RoleAgent)
	token := tokenFor(t, jwt, entity.RoleAgent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), string(entity.RoleAgent))
}

func TestRequireRoleBearerHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := newGuardedRouter(t, jwt, entity.RoleClient)
	token := tokenFor(t, jwt, entity.RoleClient)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
