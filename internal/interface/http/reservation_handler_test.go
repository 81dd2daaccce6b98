package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	handlers "github.com/oualidazemray/Bellavista1.0-sub002/internal/interface/http"
)

type fakeReservationRepo struct {
	pending []entity.PendingReservation
}

func (r *fakeReservationRepo) ListPending(_ context.Context) ([]entity.PendingReservation, error) {
	return r.pending, nil
}

func newReservationRouter(t *testing.T, pending []entity.PendingReservation) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := application.NewReservationService(&fakeReservationRepo{pending: pending})
	h := handlers.NewReservationHandler(svc, quietLogger())

	r := gin.New()
	r.GET("/api/admin/pending-reservations", h.Pending)
	return r
}

func TestPendingReservationsProjection(t *testing.T) {
	checkIn := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	r := newReservationRouter(t, []entity.PendingReservation{
		{
			Reservation: entity.Reservation{
				ID:         "res-1",
				Status:     entity.ReservationPending,
				CheckIn:    checkIn,
				CheckOut:   checkIn.Add(48 * time.Hour),
				Guests:     2,
				TotalPrice: 340.50,
			},
			ClientName:  "Demo Client",
			ClientEmail: "demo@example.com",
			RoomTypes:   []string{"DOUBLE", "SUITE"},
		},
	})

	w := getJSON(r, "/api/admin/pending-reservations")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	raw, ok := env.Data["reservations"].([]any)
	require.True(t, ok)
	require.Len(t, raw, 1)

	res := raw[0].(map[string]any)
	assert.Equal(t, "res-1", res["id"])
	assert.Equal(t, entity.ReservationPending, res["status"])
	assert.Equal(t, "Demo Client", res["client_name"])
	assert.Equal(t, "demo@example.com", res["client_email"])
	assert.Equal(t, []any{"DOUBLE", "SUITE"}, res["room_types"])
	assert.Equal(t, "2026-09-01T14:00:00Z", res["check_in"])
	assert.EqualValues(t, 2, res["guests"])
}

func TestPendingReservationsEmpty(t *testing.T) {
	r := newReservationRouter(t, nil)

	w := getJSON(r, "/api/admin/pending-reservations")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	raw, ok := env.Data["reservations"].([]any)
	require.True(t, ok)
	assert.Empty(t, raw)
}
