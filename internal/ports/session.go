package ports

import (
	"context"

	"github.com/Vovarama1992/cloudio/internal/models"
)

type SessionStore interface {
	// Load returns nil, nil for an unknown or expired session.
	Load(ctx context.Context, id string) (*models.ViewState, error)
	Save(ctx context.Context, id string, state *models.ViewState) error
}
