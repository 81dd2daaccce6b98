package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/application"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
)

const userColumns = `id, email, password_hash, name, phone, role, is_verified,
	verification_token, verification_expires_at, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Phone, &u.Role,
		&u.IsVerified, &u.VerificationToken, &u.VerificationExpiresAt,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, phone, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Password, u.Name, u.Phone, u.Role)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return application.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now()
		WHERE id = $2
	`, hash, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return application.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) SetVerificationToken(ctx context.Context, id, token string, expiresAt time.Time) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET verification_token = $1, verification_expires_at = $2, updated_at = now()
		WHERE id = $3
	`, token, expiresAt, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return application.ErrUserNotFound
	}
	return nil
}

// ConsumeVerificationToken claims the token in a single conditional update
// so concurrent duplicate requests can consume it at most once. The
// follow-up probe only runs when zero rows matched, to tell "expired"
// apart from "unknown".
func (r *UserRepository) ConsumeVerificationToken(ctx context.Context, token string) (string, error) {
	var userID string
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET is_verified = true,
		    verification_token = NULL,
		    verification_expires_at = NULL,
		    updated_at = now()
		WHERE verification_token = $1
		  AND verification_expires_at > now()
		RETURNING id
	`, token).Scan(&userID)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE verification_token = $1)
	`, token).Scan(&exists); err != nil {
		return "", err
	}
	if exists {
		return "", application.ErrTokenExpired
	}
	return "", application.ErrTokenNotFound
}

func (r *UserRepository) SearchClients(ctx context.Context, q string, limit int) ([]entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = $1 AND email ILIKE '%' || $2 || '%'
		ORDER BY email
		LIMIT $3
	`, entity.RoleClient, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

var _ repository.UserRepository = (*UserRepository)(nil)
