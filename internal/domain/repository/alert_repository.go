package repository

import (
	"context"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
)

// AlertFilter narrows admin alert listings.
type AlertFilter string

const (
	AlertFilterAll    AlertFilter = "all"
	AlertFilterRead   AlertFilter = "read"
	AlertFilterUnread AlertFilter = "unread"
)

// AlertRepository covers admin-facing alert operations. Every method is
// scoped to ForAdmin=true rows; an update or delete that matches nothing
// returns ErrNotFound.
type AlertRepository interface {
	Create(ctx context.Context, a *entity.Alert) error

	// List returns one page of admin alerts ordered unread-first then
	// newest-first, plus the total count for the filter.
	List(ctx context.Context, filter AlertFilter, offset, limit int) ([]entity.Alert, int64, error)

	SetRead(ctx context.Context, id string, read bool) error
	Delete(ctx context.Context, id string) error

	// MarkAllRead marks every unread admin alert read and reports how many
	// rows changed. Re-running it is harmless.
	MarkAllRead(ctx context.Context) (int64, error)
}
