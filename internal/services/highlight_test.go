package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/services"
	"github.com/sbilibin2017/team-manager/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock() time.Time { return fixedNow }

func seededAthlete(t *testing.T, store *memory.Store) *models.Athlete {
	t.Helper()
	player, err := store.GetUserByUsername(context.Background(), memory.SeedAthleteUsername)
	require.NoError(t, err)
	a, err := store.GetAthleteByUserID(context.Background(), player.ID)
	require.NoError(t, err)
	return a
}

func TestHighlightService_WithoutCache(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	svc := services.NewHighlightService(store, store, store, nil, services.NewPublisher(nil), clock)
	athlete := seededAthlete(t, store)

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Set(ctx, models.NewBestOfWeek{AthleteID: "missing", SetBy: "admin"})
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)

	rebounds := 14
	b, err := svc.Set(ctx, models.NewBestOfWeek{
		AthleteID:    athlete.ID,
		Achievements: models.Achievements{Rebounds: &rebounds},
		SetBy:        "admin",
	})
	require.NoError(t, err)
	assert.True(t, b.WeekStart.Equal(models.StartOfWeek(fixedNow)))

	fa, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, b.ID, fa.ID)
	require.NotNil(t, fa.Athlete)
	assert.Equal(t, athlete.ID, fa.Athlete.ID)
	require.NotNil(t, fa.User)
	assert.Equal(t, "John Player", fa.User.FullName)
}

func TestHighlightService_OnlyExactBoundaryIsCurrent(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	svc := services.NewHighlightService(store, store, store, nil, services.NewPublisher(nil), clock)
	athlete := seededAthlete(t, store)

	// A week start carrying the time of day is stored but never current.
	skewed := models.StartOfWeek(fixedNow).Add(14 * time.Hour)
	_, err := svc.Set(ctx, models.NewBestOfWeek{AthleteID: athlete.ID, WeekStart: &skewed, SetBy: "admin"})
	require.NoError(t, err)

	_, err = svc.Current(ctx)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestHighlightService_Cache(t *testing.T) {
	ctx := context.Background()
	weekStart := models.StartOfWeek(fixedNow)

	t.Run("hit skips the record lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := services.NewMockHighlightCache(ctrl)
		store := newStore(t)
		svc := services.NewHighlightService(store, store, store, cache, services.NewPublisher(nil), clock)
		athlete := seededAthlete(t, store)

		cached := &models.BestOfWeek{ID: "cached", AthleteID: athlete.ID, WeekStart: weekStart}
		cache.EXPECT().GetWeek(gomock.Any(), weekStart).Return(cached, nil)

		fa, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "cached", fa.ID)
		require.NotNil(t, fa.Athlete)
		assert.Equal(t, athlete.ID, fa.Athlete.ID)
	})

	t.Run("miss reads through and fills", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := services.NewMockHighlightCache(ctrl)
		store := newStore(t)
		svc := services.NewHighlightService(store, store, store, cache, services.NewPublisher(nil), clock)
		athlete := seededAthlete(t, store)

		cache.EXPECT().InvalidateWeek(gomock.Any(), weekStart).Return(nil)
		b, err := svc.Set(ctx, models.NewBestOfWeek{AthleteID: athlete.ID, SetBy: "admin"})
		require.NoError(t, err)

		cache.EXPECT().GetWeek(gomock.Any(), weekStart).Return(nil, nil)
		cache.EXPECT().SetWeek(gomock.Any(), weekStart, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ time.Time, got *models.BestOfWeek) error {
				assert.Equal(t, b.ID, got.ID)
				return nil
			})

		fa, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, b.ID, fa.ID)
	})

	t.Run("miss with nothing this week is not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := services.NewMockHighlightCache(ctrl)
		store := newStore(t)
		svc := services.NewHighlightService(store, store, store, cache, services.NewPublisher(nil), clock)

		cache.EXPECT().GetWeek(gomock.Any(), weekStart).Return(nil, nil)

		_, err := svc.Current(ctx)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("cache failures fall back to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cache := services.NewMockHighlightCache(ctrl)
		store := newStore(t)
		svc := services.NewHighlightService(store, store, store, cache, services.NewPublisher(nil), clock)
		athlete := seededAthlete(t, store)

		cache.EXPECT().InvalidateWeek(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		_, err := svc.Set(ctx, models.NewBestOfWeek{AthleteID: athlete.ID, SetBy: "admin"})
		require.NoError(t, err)

		cache.EXPECT().GetWeek(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
		cache.EXPECT().SetWeek(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		fa, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, athlete.ID, fa.AthleteID)
	})
}

// weekCache is a HighlightCache that never expires.
type weekCache map[int64]models.BestOfWeek

func (c weekCache) GetWeek(_ context.Context, weekStart time.Time) (*models.BestOfWeek, error) {
	b, ok := c[weekStart.UnixMilli()]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (c weekCache) SetWeek(_ context.Context, weekStart time.Time, b *models.BestOfWeek) error {
	c[weekStart.UnixMilli()] = *b
	return nil
}

func (c weekCache) InvalidateWeek(_ context.Context, weekStart time.Time) error {
	delete(c, weekStart.UnixMilli())
	return nil
}

func TestHighlightService_CachedWeekSeesProfileChanges(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	pub := services.NewPublisher(nil)
	cache := weekCache{}
	highlights := services.NewHighlightService(store, store, store, cache, pub, clock)
	athletes := services.NewAthleteService(store, store, store, pub)
	users := services.NewUserService(store, pub)
	athlete := seededAthlete(t, store)

	_, err := highlights.Set(ctx, models.NewBestOfWeek{AthleteID: athlete.ID, SetBy: "admin"})
	require.NoError(t, err)

	fa, err := highlights.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "85", fa.Athlete.OverallPerformance)
	require.Len(t, cache, 1)

	perf := "99"
	_, err = athletes.Update(ctx, athlete.ID, models.AthletePatch{OverallPerformance: &perf})
	require.NoError(t, err)

	fa, err = highlights.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "99", fa.Athlete.OverallPerformance)

	name := "Johnny Player"
	_, err = users.Update(ctx, athlete.UserID, models.UserPatch{FullName: &name})
	require.NoError(t, err)

	fa, err = highlights.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, fa.User)
	assert.Equal(t, "Johnny Player", fa.User.FullName)

	require.NoError(t, athletes.Delete(ctx, athlete.ID))

	fa, err = highlights.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, fa.Athlete)
	assert.Nil(t, fa.User)
}
