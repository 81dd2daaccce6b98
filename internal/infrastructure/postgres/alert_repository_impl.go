package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
)

type AlertRepository struct {
	pool *pgxpool.Pool
}

func NewAlertRepository(pool *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{pool: pool}
}

func (r *AlertRepository) Create(ctx context.Context, a *entity.Alert) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO alerts (type, message, read, for_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, a.Type, a.Message, a.Read, a.ForAdmin)
	return row.Scan(&a.ID, &a.CreatedAt)
}

// List pages through admin alerts, unread first and newest first within
// each group. The total count uses the same filter so page math done by
// the caller stays consistent with what is returned.
func (r *AlertRepository) List(ctx context.Context, filter repository.AlertFilter, offset, limit int) ([]entity.Alert, int64, error) {
	where := `for_admin = true`
	switch filter {
	case repository.AlertFilterRead:
		where += ` AND read = true`
	case repository.AlertFilterUnread:
		where += ` AND read = false`
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM alerts WHERE `+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, type, message, read, for_admin, created_at
		FROM alerts
		WHERE `+where+`
		ORDER BY read ASC, created_at DESC
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	alerts := make([]entity.Alert, 0, limit)
	for rows.Next() {
		var a entity.Alert
		if err := rows.Scan(&a.ID, &a.Type, &a.Message, &a.Read, &a.ForAdmin, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		alerts = append(alerts, a)
	}
	return alerts, total, rows.Err()
}

func (r *AlertRepository) SetRead(ctx context.Context, id string, read bool) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE alerts SET read = $1
		WHERE id = $2 AND for_admin = true
	`, read, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *AlertRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM alerts
		WHERE id = $1 AND for_admin = true
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *AlertRepository) MarkAllRead(ctx context.Context) (int64, error) {
	res, err := r.pool.Exec(ctx, `
		UPDATE alerts SET read = true
		WHERE for_admin = true AND read = false
	`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.AlertRepository = (*AlertRepository)(nil)
