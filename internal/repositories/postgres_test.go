package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

func newMockStore(t *testing.T) (*PostgresStore, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "pgx")
	t.Cleanup(func() { sqlxDB.Close() })

	store := NewPostgresStore(sqlxDB, nil)
	store.now = func() time.Time { return fixedNow }
	return store, sqlxDB, mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

var userCols = []string{"id", "username", "email", "password", "role", "full_name", "profile_picture", "position", "created_at"}

func TestPostgresStore_GetUser(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantNil bool
		wantErr bool
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("FROM users WHERE id = $1")).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(userCols).
						AddRow("u1", "alice", "alice@example.com", "hash", "admin", "Alice", nil, "Coach", fixedNow))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("FROM users WHERE id = $1")).
					WithArgs("u1").
					WillReturnRows(sqlmock.NewRows(userCols))
			},
			wantNil: true,
		},
		{
			name: "backend error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(q("FROM users WHERE id = $1")).
					WithArgs("u1").
					WillReturnError(errors.New("connection reset"))
			},
			wantNil: true,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, mock := newMockStore(t)
			tt.setup(mock)

			u, err := store.GetUser(context.Background(), "u1")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantNil {
				assert.Nil(t, u)
			} else {
				require.NotNil(t, u)
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, models.RoleAdmin, u.Role)
				assert.Nil(t, u.ProfilePicture)
				require.NotNil(t, u.Position)
				assert.Equal(t, "Coach", *u.Position)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_CreateAthleteDefaults(t *testing.T) {
	store, _, mock := newMockStore(t)

	mock.ExpectExec(q("INSERT INTO athletes")).
		WithArgs(sqlmock.AnyArg(), "u1", nil, nil, nil, "0", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a, err := store.CreateAthlete(context.Background(), models.NewAthlete{UserID: "u1"})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, models.DefaultOverallPerformance, a.OverallPerformance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateAthlete(t *testing.T) {
	cols := []string{"id", "user_id", "height", "weight", "sleep_hours", "overall_performance", "last_training"}

	t.Run("merges patch", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectQuery(q("FROM athletes WHERE id = $1")).
			WithArgs("a1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("a1", "u1", "6'2\"", "185 lbs", nil, "0", nil))
		mock.ExpectExec(q("UPDATE athletes")).
			WithArgs("a1", "6'2\"", "185 lbs", nil, "85.5", nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		perf := "85.5"
		a, err := store.UpdateAthlete(context.Background(), "a1", models.AthletePatch{OverallPerformance: &perf})
		require.NoError(t, err)
		require.NotNil(t, a)
		assert.Equal(t, "85.5", a.OverallPerformance)
		assert.Equal(t, "6'2\"", *a.Height)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectQuery(q("FROM athletes WHERE id = $1")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(cols))

		a, err := store.UpdateAthlete(context.Background(), "missing", models.AthletePatch{})
		assert.NoError(t, err)
		assert.Nil(t, a)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("row vanished before write", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectQuery(q("FROM athletes WHERE id = $1")).
			WithArgs("a1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("a1", "u1", nil, nil, nil, "0", nil))
		mock.ExpectExec(q("UPDATE athletes")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		a, err := store.UpdateAthlete(context.Background(), "a1", models.AthletePatch{})
		assert.NoError(t, err)
		assert.Nil(t, a)
	})
}

func TestPostgresStore_DeleteEvent(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "deleted", affected: 1, want: true},
		{name: "unknown id", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, mock := newMockStore(t)
			mock.ExpectExec(q("DELETE FROM events WHERE id = $1")).
				WithArgs("e1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := store.DeleteEvent(context.Background(), "e1")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_GetUpcomingEventsUsesStoreClock(t *testing.T) {
	store, _, mock := newMockStore(t)
	cols := []string{"id", "title", "description", "event_type", "start_date", "end_date", "is_mandatory", "created_by"}

	mock.ExpectQuery(q("FROM events WHERE start_date > $1")).
		WithArgs(fixedNow).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("e1", "Game day", nil, "game", fixedNow.Add(24*time.Hour), nil, true, "admin"))

	events, err := store.GetUpcomingEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.EventGame, events[0].EventType)
	assert.True(t, events[0].IsMandatory)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetExercisesByCategoryEmpty(t *testing.T) {
	store, _, mock := newMockStore(t)
	cols := []string{"id", "name", "description", "category", "video_url", "metrics", "created_by"}

	mock.ExpectQuery(q("FROM exercises WHERE category = $1")).
		WithArgs("aerobic").
		WillReturnRows(sqlmock.NewRows(cols))

	list, err := store.GetExercisesByCategory(context.Background(), models.CategoryAerobic)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestPostgresStore_GetExerciseDecodesMetrics(t *testing.T) {
	store, _, mock := newMockStore(t)
	cols := []string{"id", "name", "description", "category", "video_url", "metrics", "created_by"}

	mock.ExpectQuery(q("FROM exercises WHERE id = $1")).
		WithArgs("x1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("x1", "Free throws", nil, "basketball", nil, []byte(`{"repetitions":50,"accuracy":80}`), "admin"))

	e, err := store.GetExercise(context.Background(), "x1")
	require.NoError(t, err)
	require.NotNil(t, e)
	require.NotNil(t, e.Metrics)
	assert.Equal(t, 50, *e.Metrics.Repetitions)
	assert.Equal(t, 80.0, *e.Metrics.Accuracy)
	assert.Nil(t, e.Metrics.Duration)
}

func TestPostgresStore_BestOfWeek(t *testing.T) {
	cols := []string{"id", "athlete_id", "week_start", "achievements", "set_by"}
	weekStart := models.StartOfWeek(fixedNow)

	t.Run("current matches the exact week boundary", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectQuery(q("WHERE week_start = $1 ORDER BY seq DESC LIMIT 1")).
			WithArgs(weekStart).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow("b1", "a1", weekStart, []byte(`{"rebounds":12,"description":"Great week"}`), "admin"))

		b, err := store.GetCurrentBestOfWeek(context.Background())
		require.NoError(t, err)
		require.NotNil(t, b)
		assert.Equal(t, 12, *b.Achievements.Rebounds)
		assert.Nil(t, b.Achievements.Assists)
		assert.Equal(t, "Great week", *b.Achievements.Description)
	})

	t.Run("none this week", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectQuery(q("FROM best_of_week")).
			WithArgs(weekStart).
			WillReturnRows(sqlmock.NewRows(cols))

		b, err := store.GetCurrentBestOfWeek(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("set defaults the week start", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectExec(q("INSERT INTO best_of_week")).
			WithArgs(sqlmock.AnyArg(), "a1", weekStart, sqlmock.AnyArg(), "admin").
			WillReturnResult(sqlmock.NewResult(0, 1))

		b, err := store.SetBestOfWeek(context.Background(), models.NewBestOfWeek{AthleteID: "a1", SetBy: "admin"})
		require.NoError(t, err)
		assert.True(t, b.WeekStart.Equal(weekStart))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_CreateGalleryItemDefaultAlbum(t *testing.T) {
	store, _, mock := newMockStore(t)
	mock.ExpectExec(q("INSERT INTO gallery_items")).
		WithArgs(sqlmock.AnyArg(), "Team photo", nil, "image", "https://cdn.example.com/team.jpg", "general", "admin", fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	g, err := store.CreateGalleryItem(context.Background(), models.NewGalleryItem{
		Title:      "Team photo",
		Type:       models.MediaImage,
		URL:        "https://cdn.example.com/team.jpg",
		UploadedBy: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAlbum, g.Album)
	assert.Equal(t, fixedNow, g.UploadedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_RunsInsideRequestTransaction(t *testing.T) {
	store, db, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM live_streams WHERE id = $1")).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)
	store.txGetter = func(ctx context.Context) *sqlx.Tx { return tx }

	ok, err := store.DeleteLiveStream(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(q("CREATE TABLE IF NOT EXISTS users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = Migrate(context.Background(), sqlx.NewDb(db, "pgx"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOne_MapsNoRows(t *testing.T) {
	store, _, mock := newMockStore(t)
	mock.ExpectQuery(q("FROM live_streams WHERE id = $1")).
		WithArgs("s1").
		WillReturnError(sql.ErrNoRows)

	ls, err := store.GetLiveStream(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Nil(t, ls)
}

func TestPostgresStore_StoresMicrosecondTimestamps(t *testing.T) {
	ctx := context.Background()
	stamped := time.Date(2025, 10, 15, 14, 30, 0, 123456000, time.UTC)
	precise := stamped.Add(789 * time.Nanosecond)

	t.Run("server clock", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		store.now = func() time.Time { return precise }
		anyArg := sqlmock.AnyArg()
		mock.ExpectExec(q("INSERT INTO users")).
			WithArgs(anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, stamped).
			WillReturnResult(sqlmock.NewResult(0, 1))

		u, err := store.CreateUser(ctx, models.NewUser{Username: "coach", Email: "coach@team.com", Password: "x", Role: models.RoleAdmin, FullName: "Coach"})
		require.NoError(t, err)
		assert.Equal(t, stamped, u.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("client supplied dates", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		end := precise.Add(time.Hour)
		anyArg := sqlmock.AnyArg()
		mock.ExpectExec(q("INSERT INTO events")).
			WithArgs(anyArg, anyArg, anyArg, anyArg, stamped, stamped.Add(time.Hour), anyArg, anyArg).
			WillReturnResult(sqlmock.NewResult(0, 1))

		e, err := store.CreateEvent(ctx, models.NewEvent{Title: "Game", EventType: models.EventGame, StartDate: precise, EndDate: &end, CreatedBy: "admin"})
		require.NoError(t, err)
		assert.Equal(t, stamped, e.StartDate)
		require.NotNil(t, e.EndDate)
		assert.Equal(t, stamped.Add(time.Hour), *e.EndDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("week start below a microsecond off the boundary", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		weekStart := models.StartOfWeek(fixedNow)
		drifted := weekStart.Add(500 * time.Nanosecond)
		mock.ExpectExec(q("INSERT INTO best_of_week")).
			WithArgs(sqlmock.AnyArg(), "a1", weekStart, sqlmock.AnyArg(), "admin").
			WillReturnResult(sqlmock.NewResult(0, 1))

		b, err := store.SetBestOfWeek(ctx, models.NewBestOfWeek{AthleteID: "a1", WeekStart: &drifted, SetBy: "admin"})
		require.NoError(t, err)
		assert.Equal(t, weekStart, b.WeekStart)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresStore_MapsUniqueViolations(t *testing.T) {
	ctx := context.Background()
	violation := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	t.Run("create user", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectExec(q("INSERT INTO users")).WillReturnError(violation)

		u, err := store.CreateUser(ctx, models.NewUser{Username: "admin", Email: "a@team.com", Password: "x", Role: models.RoleAdmin, FullName: "A"})
		assert.Nil(t, u)
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("update user", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectQuery(q("FROM users WHERE id = $1")).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows(userCols).
				AddRow("u1", "alice", "alice@team.com", "hash", "athlete", "Alice", nil, nil, fixedNow))
		mock.ExpectExec(q("UPDATE users")).WillReturnError(violation)

		name := "admin"
		_, err := store.UpdateUser(ctx, "u1", models.UserPatch{Username: &name})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("second athlete profile", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectExec(q("INSERT INTO athletes")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "athletes_user_id_key"})

		_, err := store.CreateAthlete(ctx, models.NewAthlete{UserID: "u1"})
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		store, _, mock := newMockStore(t)
		mock.ExpectExec(q("INSERT INTO athletes")).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err := store.CreateAthlete(ctx, models.NewAthlete{UserID: "u1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrAlreadyExists)
	})
}
