package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/pkg/response"
)

type ReservationHandler struct {
	Svc    *application.ReservationService
	Logger *logrus.Logger
}

func NewReservationHandler(svc *application.ReservationService, logger *logrus.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

// Pending GET /api/admin/pending-reservations
// Returns PENDING reservations enriched for the admin dashboard.
func (h *ReservationHandler) Pending(c *gin.Context) {
	list, err := h.Svc.Pending(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list pending reservations failed")
		response.Error[any](c, http.StatusInternalServerError, "internal error", err.Error())
		return
	}

	out := make([]gin.H, 0, len(list))
	for _, r := range list {
		out = append(out, gin.H{
			"id":           r.ID,
			"status":       r.Status,
			"client_name":  r.ClientName,
			"client_email": r.ClientEmail,
			"room_types":   r.RoomTypes,
			"check_in":     r.CheckIn.Format(time.RFC3339),
			"check_out":    r.CheckOut.Format(time.RFC3339),
			"guests":       r.Guests,
			"total_price":  r.TotalPrice,
			"created_at":   r.CreatedAt.Format(time.RFC3339),
		})
	}
	response.Success(c, http.StatusOK, gin.H{"reservations": out}, "pending reservations", nil)
}
