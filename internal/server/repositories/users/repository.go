// Package users stores authority accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/instabids/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// ConfirmEmail stamps email_confirmed_at and clears the confirmation token.
	ConfirmEmail(ctx context.Context, id string) (*models.User, error)
}
