// Package refreshtokens stores the opaque refresh tokens issued with each
// authority session. A token is single use: refreshing deletes it and issues
// a new one.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/instabids/internal/server/models"
)

// Repository defines operations for issuing, retrieving, and revoking refresh tokens.
type Repository interface {
	// Create stores a new refresh token for userID.
	Create(ctx context.Context, userID string, token string, expiresAt time.Time) error

	// Find looks up a refresh token by its opaque token string and returns its metadata.
	// Implementations should return a not-found error when the token is absent.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Consume atomically removes and returns a token; common.ErrorNotFound
	// when it does not exist (already used or revoked).
	Consume(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes a refresh token by its token string. Deleting a non-existent
	// token should not be considered an error.
	Delete(ctx context.Context, token string) error

	// DeleteByUser revokes all refresh tokens of a user (sign-out everywhere).
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
