package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	repo "github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/response"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/validation"
)

type AlertHandler struct {
	Svc    *application.AlertService
	Logger *logrus.Logger
}

func NewAlertHandler(svc *application.AlertService, logger *logrus.Logger) *AlertHandler {
	return &AlertHandler{Svc: svc, Logger: logger}
}

func alertProjection(a entity.Alert) gin.H {
	return gin.H{
		"id":         a.ID,
		"type":       a.Type,
		"message":    a.Message,
		"read":       a.Read,
		"created_at": a.CreatedAt.Format(time.RFC3339),
	}
}

// List GET /api/admin/alerts?page&limit&filter
func (h *AlertHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	filter := repo.AlertFilter(c.DefaultQuery("filter", "all"))

	pageData, err := h.Svc.List(c.Request.Context(), page, limit, filter)
	if err != nil {
		h.Logger.WithError(err).Error("list alerts failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}

	alerts := make([]gin.H, 0, len(pageData.Alerts))
	for _, a := range pageData.Alerts {
		alerts = append(alerts, alertProjection(a))
	}
	response.Success(c, http.StatusOK, gin.H{
		"alerts":       alerts,
		"total_pages":  pageData.TotalPages,
		"current_page": pageData.CurrentPage,
		"total_alerts": pageData.TotalAlerts,
	}, "alerts", nil)
}

type updateAlertRequest struct {
	ReadStatus *bool `json:"readStatus" binding:"required"`
}

// Update PUT /api/admin/alerts/:id
func (h *AlertHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req updateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.SetRead(c.Request.Context(), id, *req.ReadStatus); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "alert not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("alert_id", id).Error("update alert failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"updated": true}, "alert updated", nil)
}

// Delete DELETE /api/admin/alerts/:id
func (h *AlertHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "alert not found", nil)
			return
		}
		h.Logger.WithError(err).WithField("alert_id", id).Error("delete alert failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "alert deleted", nil)
}

// MarkAllRead POST /api/admin/alerts
// Idempotent: re-posting when nothing is unread is a no-op.
func (h *AlertHandler) MarkAllRead(c *gin.Context) {
	n, err := h.Svc.MarkAllRead(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("mark all alerts read failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"marked_read": n}, "all alerts marked read", nil)
}
