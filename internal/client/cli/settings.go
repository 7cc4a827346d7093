package cli

import (
	"context"

	"github.com/dmitrijs2005/instabids/internal/client/models"
)

// Theme shows the current theme, or sets it: theme [light|dark|system].
func (a *App) Theme(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		a.printf("Theme: %s\n", a.theme.Theme())
		return nil
	case 1:
		t, err := models.ParseTheme(args[0])
		if err != nil {
			return err
		}
		return a.theme.SetTheme(ctx, t)
	default:
		return errUsage
	}
}

// Ping checks that the authority is reachable.
func (a *App) Ping(ctx context.Context) error {
	if err := a.account.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	a.printf("Authority is up.\n")
	return nil
}

// Reset signs out and wipes every locally stored value.
func (a *App) Reset(ctx context.Context) error {
	if a.isLoggedIn() {
		if err := a.store.Logout(ctx); err != nil {
			a.logger.Warn(ctx, "logout before reset failed", "error", err)
		}
	}
	if err := a.account.ClearLocalData(ctx); err != nil {
		return err
	}
	a.printf("Local data cleared.\n")
	return nil
}
