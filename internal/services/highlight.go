package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

// HighlightCache caches the best-of-week record of a week. Only the record is cached;
// the athlete and account are read from the store on every request.
type HighlightCache interface {
	GetWeek(ctx context.Context, weekStart time.Time) (*models.BestOfWeek, error) // Returns nil on a miss
	SetWeek(ctx context.Context, weekStart time.Time, b *models.BestOfWeek) error // Stores the entry with TTL
	InvalidateWeek(ctx context.Context, weekStart time.Time) error                // Drops the entry
}

// HighlightService manages the best-of-week feature.
type HighlightService struct {
	users      storage.UserStore
	athletes   storage.AthleteStore
	highlights storage.BestOfWeekStore
	cache      HighlightCache
	pub        *Publisher
	now        func() time.Time
}

// NewHighlightService creates a new HighlightService. cache may be nil; now defaults to time.Now.
func NewHighlightService(
	users storage.UserStore,
	athletes storage.AthleteStore,
	highlights storage.BestOfWeekStore,
	cache HighlightCache,
	pub *Publisher,
	now func() time.Time,
) *HighlightService {
	if now == nil {
		now = time.Now
	}
	return &HighlightService{
		users:      users,
		athletes:   athletes,
		highlights: highlights,
		cache:      cache,
		pub:        pub,
		now:        now,
	}
}

// Current returns this week's featured athlete with the profile and account attached.
func (s *HighlightService) Current(ctx context.Context) (*models.FeaturedAthlete, error) {
	b, err := s.currentRecord(ctx)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	fa := &models.FeaturedAthlete{BestOfWeek: *b}
	fa.Athlete, err = s.athletes.GetAthlete(ctx, b.AthleteID)
	if err != nil {
		logger.Log.Errorw("failed to get featured athlete", "athlete_id", b.AthleteID, "error", err)
		return nil, err
	}
	if fa.Athlete != nil {
		fa.User, err = s.users.GetUser(ctx, fa.Athlete.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get featured user", "user_id", fa.Athlete.UserID, "error", err)
			return nil, err
		}
	}
	return fa, nil
}

// currentRecord reads the record of the current week through the cache.
func (s *HighlightService) currentRecord(ctx context.Context) (*models.BestOfWeek, error) {
	weekStart := models.StartOfWeek(s.now())

	if s.cache != nil {
		b, err := s.cache.GetWeek(ctx, weekStart)
		if err != nil {
			logger.Log.Warnw("highlight cache read failed", "error", err)
		} else if b != nil {
			return b, nil
		}
	}

	b, err := s.highlights.GetCurrentBestOfWeek(ctx)
	if err != nil {
		logger.Log.Errorw("failed to get current best of week", "error", err)
		return nil, err
	}
	if b != nil && s.cache != nil {
		if err := s.cache.SetWeek(ctx, weekStart, b); err != nil {
			logger.Log.Warnw("highlight cache write failed", "error", err)
		}
	}
	return b, nil
}

// Set features an existing athlete. A missing week start means the current week.
func (s *HighlightService) Set(ctx context.Context, in models.NewBestOfWeek) (*models.BestOfWeek, error) {
	a, err := s.athletes.GetAthlete(ctx, in.AthleteID)
	if err != nil {
		logger.Log.Errorw("failed to get athlete", "id", in.AthleteID, "error", err)
		return nil, err
	}
	if a == nil {
		return nil, ErrReferenceNotFound
	}

	if in.WeekStart == nil {
		ws := models.StartOfWeek(s.now())
		in.WeekStart = &ws
	}

	b, err := s.highlights.SetBestOfWeek(ctx, in)
	if err != nil {
		logger.Log.Errorw("failed to set best of week", "athlete_id", in.AthleteID, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateWeek(ctx, b.WeekStart); err != nil {
			logger.Log.Warnw("highlight cache invalidation failed", "error", err)
		}
	}
	s.pub.Publish(ctx, EntityBestOfWeek, models.OperationCreate, b.ID)
	return b, nil
}
