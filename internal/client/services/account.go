package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/repositories/kv"
)

// AccountRemote is the authority surface used for account housekeeping.
type AccountRemote interface {
	Ping(ctx context.Context) error
	GetUser(ctx context.Context) (*models.AuthUser, error)
	VerifyEmail(ctx context.Context, email, token string) (*models.AuthUser, error)
}

// AccountService defines account operations that do not change who is
// signed in.
//
// Contract:
//   - Ping: check that the authority is reachable.
//   - CurrentUser: the authority's record of the signed-in account.
//   - VerifyEmail: confirm an address with the token issued at sign-up.
//   - ClearLocalData: wipe every locally persisted key (session, auth state,
//     preferences).
type AccountService interface {
	Ping(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.AuthUser, error)
	VerifyEmail(ctx context.Context, email, token string) (*models.AuthUser, error)
	ClearLocalData(ctx context.Context) error
}

type accountService struct {
	remote  AccountRemote
	storage kv.Repository
}

func NewAccountService(remote AccountRemote, storage kv.Repository) AccountService {
	return &accountService{remote: remote, storage: storage}
}

func (a *accountService) Ping(ctx context.Context) error {
	return a.remote.Ping(ctx)
}

func (a *accountService) CurrentUser(ctx context.Context) (*models.AuthUser, error) {
	return a.remote.GetUser(ctx)
}

func (a *accountService) VerifyEmail(ctx context.Context, email, token string) (*models.AuthUser, error) {
	u, err := a.remote.VerifyEmail(ctx, email, token)
	if err != nil {
		return nil, fmt.Errorf("verify email: %w", err)
	}
	return u, nil
}

func (a *accountService) ClearLocalData(ctx context.Context) error {
	if err := a.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear local data: %w", err)
	}
	return nil
}
