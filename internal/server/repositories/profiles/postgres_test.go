package profiles

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/instabids/internal/common"
	"github.com/dmitrijs2005/instabids/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var profileCols = []string{"id", "username", "full_name", "avatar_url", "bio", "phone", "notification_preferences", "created_at", "updated_at"}

func str(s string) *string { return &s }

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+profiles\s*\(id,\s*username,.*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6,\s*\$7\)`).
		WithArgs("u-1", "alice", nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("u-1", "alice", nil, nil, nil, nil, nil, now, nil))

	got, err := repo.Create(context.Background(), &models.Profile{ID: "u-1", Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Nil(t, got.NotificationPreferences)
	assert.Nil(t, got.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UsernameTaken(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+profiles`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.Profile{ID: "u-1", Username: "alice"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestGetByID_DecodesPreferences(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)^SELECT\s+id,.*FROM\s+profiles\s+WHERE\s+id\s*=\s*\$1$`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("u-1", "alice", "Alice A", nil, "hi", nil, []byte(`{"email_notifications":true,"bid_alerts":true}`), now, now))

	got, err := repo.GetByID(context.Background(), "u-1")
	require.NoError(t, err)
	require.NotNil(t, got.FullName)
	assert.Equal(t, "Alice A", *got.FullName)
	require.NotNil(t, got.NotificationPreferences)
	assert.True(t, got.NotificationPreferences.EmailNotifications)
	assert.True(t, got.NotificationPreferences.BidAlerts)
	assert.False(t, got.NotificationPreferences.MarketingEmails)
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^SELECT.*FROM\s+profiles\s+WHERE\s+username\s*=\s*\$1$`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_OnlyGivenColumns(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	mock.ExpectQuery(`(?s)^UPDATE\s+profiles\s+SET\s+full_name\s*=\s*\$1,\s*bio\s*=\s*\$2,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$3\s+RETURNING`).
		WithArgs("Alice A", "new bio", "u-1").
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("u-1", "alice", "Alice A", nil, "new bio", nil, nil, now, now))

	got, err := repo.Update(context.Background(), "u-1", models.ProfileUpdate{
		FullName: str("Alice A"),
		Bio:      str("new bio"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new bio", *got.Bio)
	require.NotNil(t, got.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_Preferences(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	prefs := `{"email_notifications":false,"push_notifications":true,"bid_alerts":false,"auction_updates":false,"marketing_emails":false}`
	mock.ExpectQuery(`(?s)^UPDATE\s+profiles\s+SET\s+notification_preferences\s*=\s*\$1,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$2`).
		WithArgs(prefs, "u-1").
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow("u-1", "alice", nil, nil, nil, nil, []byte(prefs), now, now))

	got, err := repo.Update(context.Background(), "u-1", models.ProfileUpdate{
		NotificationPreferences: &models.NotificationPreferences{PushNotifications: true},
	})
	require.NoError(t, err)
	assert.True(t, got.NotificationPreferences.PushNotifications)
}

func TestUpdate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^UPDATE\s+profiles`).
		WillReturnError(errors.New("db err"))

	_, err := repo.Update(context.Background(), "u-1", models.ProfileUpdate{Phone: str("1")})
	require.Error(t, err)
	assert.Regexp(t, `db error: .*db err`, err.Error())
}
