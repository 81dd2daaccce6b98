package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	repo "github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
)

const (
	defaultAlertLimit = 10
	maxAlertLimit     = 100
)

// AlertService serves the admin alert dashboard.
type AlertService struct {
	Repo   repo.AlertRepository
	Logger *logrus.Logger
}

func NewAlertService(r repo.AlertRepository, logger *logrus.Logger) *AlertService {
	return &AlertService{Repo: r, Logger: logger}
}

// AlertPage is one page of admin alerts plus the pagination envelope.
type AlertPage struct {
	Alerts      []entity.Alert `json:"alerts"`
	TotalPages  int            `json:"total_pages"`
	CurrentPage int            `json:"current_page"`
	TotalAlerts int64          `json:"total_alerts"`
}

// List pages through admin alerts. Page numbers are 1-based; out-of-range
// inputs are clamped rather than rejected.
func (s *AlertService) List(ctx context.Context, page, limit int, filter repo.AlertFilter) (*AlertPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultAlertLimit
	}
	if limit > maxAlertLimit {
		limit = maxAlertLimit
	}
	switch filter {
	case repo.AlertFilterRead, repo.AlertFilterUnread:
	default:
		filter = repo.AlertFilterAll
	}

	alerts, total, err := s.Repo.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &AlertPage{
		Alerts:      alerts,
		TotalPages:  totalPages,
		CurrentPage: page,
		TotalAlerts: total,
	}, nil
}

// SetRead updates the read flag of one admin alert. ErrNotFound when the
// id does not match an admin-scoped alert.
func (s *AlertService) SetRead(ctx context.Context, id string, read bool) error {
	return s.Repo.SetRead(ctx, id, read)
}

// Delete removes one admin alert. ErrNotFound when nothing matched.
func (s *AlertService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// MarkAllRead marks every unread admin alert read. Safe to repeat.
func (s *AlertService) MarkAllRead(ctx context.Context) (int64, error) {
	n, err := s.Repo.MarkAllRead(ctx)
	if err != nil {
		return 0, err
	}
	if s.Logger != nil && n > 0 {
		s.Logger.WithField("count", n).Info("admin alerts marked read")
	}
	return n, nil
}
