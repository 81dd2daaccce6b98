package repository

import (
	"context"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
)

// ReservationRepository is read-only in this slice: reservations are
// created by the booking flow, the backoffice only inspects them.
type ReservationRepository interface {
	ListPending(ctx context.Context) ([]entity.PendingReservation, error)
}
