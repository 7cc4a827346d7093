// Package preferences holds device-local user preferences.
package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/instabids/internal/client/models"
	"github.com/dmitrijs2005/instabids/internal/client/repositories/kv"
	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/logging"
)

type themeState struct {
	Theme models.Theme `json:"theme"`
}

// ThemeStore keeps the colour scheme choice, persisted as {"theme": ...}
// under common.ThemeStorageKey. The default is models.ThemeSystem.
type ThemeStore struct {
	storage kv.Repository
	logger  logging.Logger
	apply   func(models.Theme)

	mu    sync.RWMutex
	theme models.Theme
}

// NewThemeStore restores the stored theme. apply, if set, is called with
// every accepted theme, starting with the restored one.
func NewThemeStore(ctx context.Context, storage kv.Repository, logger logging.Logger, apply func(models.Theme)) (*ThemeStore, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &ThemeStore{storage: storage, logger: logger, apply: apply, theme: models.ThemeSystem}

	raw, err := storage.Get(ctx, common.ThemeStorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to restore theme: %w", err)
	}
	if raw != nil {
		var st themeState
		if err := json.Unmarshal(raw, &st); err != nil {
			logger.Warn(ctx, "discarding unreadable theme", "error", err)
		} else if t, err := models.ParseTheme(string(st.Theme)); err != nil {
			logger.Warn(ctx, "discarding unknown theme", "error", err)
		} else {
			s.theme = t
		}
	}

	if s.apply != nil {
		s.apply(s.theme)
	}
	return s, nil
}

func (s *ThemeStore) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme validates, stores and applies t.
func (s *ThemeStore) SetTheme(ctx context.Context, t models.Theme) error {
	t, err := models.ParseTheme(string(t))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := kv.SetJSON(ctx, s.storage, common.ThemeStorageKey, themeState{Theme: t}); err != nil {
		s.logger.Error(ctx, "failed to persist theme", "error", err)
		return err
	}
	s.theme = t

	if s.apply != nil {
		s.apply(t)
	}
	return nil
}

// Resolve maps the stored choice to a concrete scheme; system follows
// systemDark.
func (s *ThemeStore) Resolve(systemDark bool) models.Theme {
	switch t := s.Theme(); t {
	case models.ThemeLight, models.ThemeDark:
		return t
	default:
		if systemDark {
			return models.ThemeDark
		}
		return models.ThemeLight
	}
}
