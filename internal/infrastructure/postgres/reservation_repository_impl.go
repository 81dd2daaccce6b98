package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// ListPending returns PENDING reservations enriched with the client
// identity and the booked room types, newest first.
func (r *ReservationRepository) ListPending(ctx context.Context) ([]entity.PendingReservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT res.id, res.status, res.client_id, res.check_in, res.check_out,
		       res.guests, res.total_price, res.created_at,
		       u.name, u.email,
		       COALESCE(array_agg(rm.type ORDER BY rm.type) FILTER (WHERE rm.type IS NOT NULL), '{}')
		FROM reservations res
		JOIN users u ON u.id = res.client_id
		LEFT JOIN reservation_rooms rr ON rr.reservation_id = res.id
		LEFT JOIN rooms rm ON rm.id = rr.room_id
		WHERE res.status = $1
		GROUP BY res.id, u.name, u.email
		ORDER BY res.created_at DESC
	`, entity.ReservationPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.PendingReservation{}
	for rows.Next() {
		var p entity.PendingReservation
		if err := rows.Scan(&p.ID, &p.Status, &p.ClientID, &p.CheckIn, &p.CheckOut,
			&p.Guests, &p.TotalPrice, &p.CreatedAt,
			&p.ClientName, &p.ClientEmail, &p.RoomTypes); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.ReservationRepository = (*ReservationRepository)(nil)
