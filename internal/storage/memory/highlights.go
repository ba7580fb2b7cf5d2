package memory

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// GetCurrentBestOfWeek returns the most recently set record whose week start is exactly
// the start of the current week. Records with any sub-day offset never match.
func (s *Store) GetCurrentBestOfWeek(ctx context.Context) (*models.BestOfWeek, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	weekStart := models.StartOfWeek(s.now())
	return s.highlights.findLast(func(b *models.BestOfWeek) bool { return b.WeekStart.Equal(weekStart) }), nil
}

// SetBestOfWeek adds a record. Earlier records for the same week are kept.
func (s *Store) SetBestOfWeek(ctx context.Context, in models.NewBestOfWeek) (*models.BestOfWeek, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := models.BestOfWeek{
		ID:           newID(),
		AthleteID:    in.AthleteID,
		Achievements: in.Achievements,
		SetBy:        in.SetBy,
	}
	if in.WeekStart != nil {
		b.WeekStart = *in.WeekStart
	} else {
		b.WeekStart = models.StartOfWeek(s.now())
	}
	return s.highlights.put(b.ID, b), nil
}
