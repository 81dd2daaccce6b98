package application

import (
	"context"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	repo "github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
)

// ReservationService exposes the read-only reservation views the
// backoffice needs.
type ReservationService struct {
	Repo repo.ReservationRepository
}

func NewReservationService(r repo.ReservationRepository) *ReservationService {
	return &ReservationService{Repo: r}
}

func (s *ReservationService) Pending(ctx context.Context) ([]entity.PendingReservation, error) {
	return s.Repo.ListPending(ctx)
}
