// Package memory is the process-local reference implementation of storage.Storage.
// State lives in per-entity tables and is lost when the process exits.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

var _ storage.Storage = (*Store)(nil)

// Store keeps every entity kind in its own table keyed by generated id.
type Store struct {
	mu   sync.RWMutex
	now  func() time.Time
	seed bool

	users      *table[models.User]
	athletes   *table[models.Athlete]
	exercises  *table[models.Exercise]
	sessions   *table[models.TrainingSession]
	events     *table[models.Event]
	gallery    *table[models.GalleryItem]
	highlights *table[models.BestOfWeek]
	streams    *table[models.LiveStream]
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock used for timestamps, upcoming events and the current week.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithoutSeed skips the fixture accounts.
func WithoutSeed() Option {
	return func(s *Store) {
		s.seed = false
	}
}

// New creates a store and populates the fixture accounts unless WithoutSeed is given.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		now:        time.Now,
		seed:       true,
		users:      newTable(copyUser),
		athletes:   newTable(copyAthlete),
		exercises:  newTable(copyExercise),
		sessions:   newTable(copySession),
		events:     newTable(copyEvent),
		gallery:    newTable(copyGalleryItem),
		highlights: newTable(copyBestOfWeek),
		streams:    newTable(copyLiveStream),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.seed {
		if err := s.populate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func newID() string {
	return uuid.NewString()
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// table is an insertion-ordered map of records. Rows go in and come out through dup,
// so no caller ever holds memory shared with a stored row.
type table[T any] struct {
	rows  map[string]T
	order []string
	dup   func(T) T
}

func newTable[T any](dup func(T) T) *table[T] {
	return &table[T]{rows: make(map[string]T), dup: dup}
}

func (t *table[T]) get(id string) (*T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	c := t.dup(row)
	return &c, true
}

// put stores a copy of row and returns another copy for the caller.
func (t *table[T]) put(id string, row T) *T {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = t.dup(row)
	c := t.dup(row)
	return &c
}

func (t *table[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, key := range t.order {
		if key == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// find returns the first row in insertion order that matches.
func (t *table[T]) find(match func(*T) bool) *T {
	for _, id := range t.order {
		row := t.rows[id]
		if match(&row) {
			c := t.dup(row)
			return &c
		}
	}
	return nil
}

// findLast returns the most recently inserted row that matches.
func (t *table[T]) findLast(match func(*T) bool) *T {
	for i := len(t.order) - 1; i >= 0; i-- {
		row := t.rows[t.order[i]]
		if match(&row) {
			c := t.dup(row)
			return &c
		}
	}
	return nil
}

// filter returns matching rows; a nil match selects all. The result is never nil.
func (t *table[T]) filter(match func(*T) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if match == nil || match(&row) {
			out = append(out, t.dup(row))
		}
	}
	return out
}
