package application

import (
	"context"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
	repo "github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/repository"
)

// clientSearchLimit caps agent lookups; the UI shows a short pick list.
const clientSearchLimit = 10

// ClientService backs the agent-facing client lookup.
type ClientService struct {
	Repo repo.UserRepository
}

func NewClientService(r repo.UserRepository) *ClientService {
	return &ClientService{Repo: r}
}

// Search returns up to ten CLIENT accounts whose email contains q,
// case-insensitive. Blank queries are rejected at the handler.
func (s *ClientService) Search(ctx context.Context, q string) ([]entity.User, error) {
	return s.Repo.SearchClients(ctx, q, clientSearchLimit)
}
