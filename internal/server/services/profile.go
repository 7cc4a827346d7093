package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/server/models"
	"github.com/dmitrijs2005/instabids/internal/server/repositories/repomanager"
)

var ErrInvalidUsername = errors.New("username must not be empty")

// ProfileService reads profiles and applies owner-only updates.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

func (s *ProfileService) Get(ctx context.Context, id string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).GetByID(ctx, id)
}

func (s *ProfileService) FindByUsername(ctx context.Context, username string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).GetByUsername(ctx, strings.TrimSpace(username))
}

// Update applies upd to profile id on behalf of callerID. Only the owner may
// update a profile. An empty update returns the stored profile.
func (s *ProfileService) Update(ctx context.Context, callerID, id string, upd models.ProfileUpdate) (*models.Profile, error) {
	if callerID != id {
		return nil, common.ErrorForbidden
	}
	if upd.Username != nil {
		name := strings.TrimSpace(*upd.Username)
		if name == "" {
			return nil, ErrInvalidUsername
		}
		upd.Username = &name
	}

	repo := s.repomanager.Profiles(s.db)
	if upd.IsEmpty() {
		return repo.GetByID(ctx, id)
	}
	return repo.Update(ctx, id, upd)
}
