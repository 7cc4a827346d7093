package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/dbx"
	"github.com/dmitrijs2005/instabids/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const profileColumns = `id, username, full_name, avatar_url, bio, phone, notification_preferences, created_at, updated_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrorAlreadyExists
	}
	return fmt.Errorf("db error: %w", err)
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	p := &models.Profile{}
	var prefs []byte
	err := row.Scan(&p.ID, &p.Username, &p.FullName, &p.AvatarURL, &p.Bio, &p.Phone,
		&prefs, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	if len(prefs) > 0 {
		p.NotificationPreferences = &models.NotificationPreferences{}
		if err := json.Unmarshal(prefs, p.NotificationPreferences); err != nil {
			return nil, fmt.Errorf("decode notification preferences: %w", err)
		}
	}
	return p, nil
}

// encodePrefs returns the jsonb text for p, or a nil argument for SQL NULL.
func encodePrefs(p *models.NotificationPreferences) (any, error) {
	if p == nil {
		return nil, nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	prefs, err := encodePrefs(p.NotificationPreferences)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO profiles (id, username, full_name, avatar_url, bio, phone, notification_preferences)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ` + profileColumns

	return scanProfile(r.db.QueryRowContext(ctx, query,
		p.ID, p.Username, p.FullName, p.AvatarURL, p.Bio, p.Phone, prefs))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`
	return scanProfile(r.db.QueryRowContext(ctx, query, username))
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd models.ProfileUpdate) (*models.Profile, error) {
	sets := make([]string, 0, 7)
	args := make([]any, 0, 7)
	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Username != nil {
		add("username", *upd.Username)
	}
	if upd.FullName != nil {
		add("full_name", *upd.FullName)
	}
	if upd.AvatarURL != nil {
		add("avatar_url", *upd.AvatarURL)
	}
	if upd.Bio != nil {
		add("bio", *upd.Bio)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.NotificationPreferences != nil {
		prefs, err := encodePrefs(upd.NotificationPreferences)
		if err != nil {
			return nil, err
		}
		add("notification_preferences", prefs)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE profiles SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), profileColumns)

	return scanProfile(r.db.QueryRowContext(ctx, query, args...))
}
