package client

import (
	"context"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/realtime"
)

// Client is the remote authority as seen by the rest of the client.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	GetSession(ctx context.Context) (*models.AuthSession, error)
	OnAuthStateChange(listener AuthListener) *realtime.Subscription
	SignInWithPassword(ctx context.Context, email, password string) (*models.AuthSession, error)
	SignUp(ctx context.Context, email, password string, data map[string]string) (*models.AuthUser, error)
	SignOut(ctx context.Context) error
	GetUser(ctx context.Context) (*models.AuthUser, error)
	VerifyEmail(ctx context.Context, email, token string) (*models.AuthUser, error)

	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	FindProfileByUsername(ctx context.Context, username string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id string, update models.ProfileUpdate) (*models.Profile, error)

	PresignUpload(ctx context.Context, bucket, path, contentType string, upsert bool) (*PresignedUpload, error)

	realtime.Channels
}

var _ Client = (*GRPCClient)(nil)
