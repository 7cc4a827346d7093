// Package profiles stores the public profile row of each account.
package profiles

import (
	"context"

	"github.com/dmitrijs2005/instabids/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, p *models.Profile) (*models.Profile, error)
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	// Update writes the non-nil fields of upd and stamps updated_at.
	Update(ctx context.Context, id string, upd models.ProfileUpdate) (*models.Profile, error)
}
