package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/response"
)

type ClientHandler struct {
	Svc    *application.ClientService
	Logger *logrus.Logger
}

func NewClientHandler(svc *application.ClientService, logger *logrus.Logger) *ClientHandler {
	return &ClientHandler{Svc: svc, Logger: logger}
}

// Search GET /api/agent/clients/search?email=...
// Case-insensitive contains match over CLIENT emails, capped at ten rows.
func (h *ClientHandler) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("email"))
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "Email query parameter is required.", nil)
		return
	}
	users, err := h.Svc.Search(c.Request.Context(), q)
	if err != nil {
		h.Logger.WithError(err).Error("client search failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":    u.ID,
			"email": u.Email,
			"name":  u.Name,
			"phone": u.Phone,
		})
	}
	response.Success(c, http.StatusOK, gin.H{"clients": out}, "clients", nil)
}
