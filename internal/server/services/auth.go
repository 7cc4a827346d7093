// Package services contains the authority's business logic. This file
// implements AuthService, which handles sign-up, sign-in, email confirmation
// and issuing/rotating JWTs plus server-stored refresh tokens.
package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/dbx"
	"github.com/dmitrijs2005/instabids/internal/logging"
	"github.com/dmitrijs2005/instabids/internal/server/auth"
	"github.com/dmitrijs2005/instabids/internal/server/config"
	"github.com/dmitrijs2005/instabids/internal/server/models"
	"github.com/dmitrijs2005/instabids/internal/server/repositories/repomanager"
)

const minPasswordLength = 6

// Session is an issued token pair plus the user it belongs to.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         *models.User
}

// AuthService provides authentication-related operations:
//   - SignUp: create a user and its profile
//   - SignIn: verify credentials and mint a session
//   - Refresh: rotate a refresh token and mint a new session
//   - SignOut: revoke the user's refresh tokens
//   - VerifyEmail: confirm an address with the code issued at sign-up
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	requireEmailConfirmation     bool
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		logger:                       logger,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		requireEmailConfirmation:     cfg.RequireEmailConfirmation,
	}
}

// SignUp creates an unconfirmed user and its profile in one transaction.
// The username comes from data["username"], falling back to the local part
// of the email. The confirmation code is logged, standing in for a mailer.
func (s *AuthService) SignUp(ctx context.Context, email, password string, data map[string]string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, common.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}
	code, err := generateConfirmationCode()
	if err != nil {
		return nil, common.ErrorInternal
	}

	username := strings.TrimSpace(data["username"])
	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}

	user, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.User, error) {
		u, err := s.repomanager.Users(tx).Create(ctx, &models.User{
			Email:             email,
			PasswordHash:      hash,
			ConfirmationToken: &code,
			Metadata:          data,
		})
		if err != nil {
			return nil, fmt.Errorf("error creating user: %w", err)
		}
		if _, err := s.repomanager.Profiles(tx).Create(ctx, &models.Profile{ID: u.ID, Username: username}); err != nil {
			return nil, fmt.Errorf("error creating profile: %w", err)
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "confirmation code issued", "email", email, "user_id", user.ID, "code", code)
	return user, nil
}

// SignIn verifies email and password and returns a new session. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return nil, common.ErrInvalidCredentials
	}
	if s.requireEmailConfirmation && user.EmailConfirmedAt == nil {
		return nil, common.ErrEmailNotConfirmed
	}

	return s.issueSession(ctx, user, s.db)
}

// Refresh redeems refreshToken and returns a fresh session. The old token is
// consumed inside the same transaction that stores its successor.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	return dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*Session, error) {
		token, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return nil, common.ErrInvalidToken
			}
			return nil, fmt.Errorf("error consuming refresh token: %w", err)
		}
		if token.Expired(time.Now()) {
			return nil, common.ErrRefreshTokenExpired
		}

		user, err := s.repomanager.Users(tx).GetByID(ctx, token.UserID)
		if err != nil {
			return nil, fmt.Errorf("error loading user: %w", err)
		}
		return s.issueSession(ctx, user, tx)
	})
}

// SignOut revokes every refresh token of userID.
func (s *AuthService) SignOut(ctx context.Context, userID string) error {
	n, err := s.repomanager.RefreshTokens(s.db).DeleteByUser(ctx, userID)
	if err != nil {
		return err
	}
	s.logger.Debug(ctx, "signed out", "user_id", userID, "revoked", n)
	return nil
}

func (s *AuthService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// VerifyEmail confirms email when code matches the one issued at sign-up.
// Confirming an already confirmed address returns the user unchanged.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, err
	}
	if user.EmailConfirmedAt != nil {
		return user, nil
	}
	if user.ConfirmationToken == nil ||
		subtle.ConstantTimeCompare([]byte(*user.ConfirmationToken), []byte(strings.TrimSpace(code))) != 1 {
		return nil, common.ErrInvalidToken
	}

	return s.repomanager.Users(s.db).ConfirmEmail(ctx, user.ID)
}

// --- helpers below ---

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", common.ErrInvalidEmail
	}
	return email, nil
}

func generateConfirmationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *AuthService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *AuthService) issueSession(ctx context.Context, user *models.User, tx dbx.DBTX) (*Session, error) {
	access, expiresAt, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, user.ID, refresh, time.Now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, common.ErrorInternal
	}
	return &Session{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt, User: user}, nil
}
