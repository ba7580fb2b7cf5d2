package memory

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// GetUser returns the user with the given id, or nil.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, _ := s.users.get(id)
	return u, nil
}

// GetUserByUsername returns the first user with an exactly matching username, or nil.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.users.find(func(u *models.User) bool { return u.Username == username }), nil
}

// GetUserByEmail returns the first user with an exactly matching email, or nil.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.users.find(func(u *models.User) bool { return u.Email == email }), nil
}

// CreateUser stores a new user. The password is stored as given.
func (s *Store) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{
		ID:             newID(),
		Username:       in.Username,
		Email:          in.Email,
		Password:       in.Password,
		Role:           in.Role,
		FullName:       in.FullName,
		ProfilePicture: in.ProfilePicture,
		Position:       in.Position,
		CreatedAt:      s.now(),
	}
	return s.users.put(u.ID, u), nil
}

// UpdateUser merges patch onto the stored user. It returns nil when the user does not exist.
func (s *Store) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users.get(id)
	if !ok {
		return nil, nil
	}
	u.Apply(patch)
	return s.users.put(id, *u), nil
}

// DeleteUser removes the user. Athlete profiles and authored records are kept.
func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.users.remove(id), nil
}
