package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// UserService manages existing accounts.
type UserService struct {
	users storage.UserStore
	pub   *Publisher
}

// NewUserService creates a new UserService.
func NewUserService(users storage.UserStore, pub *Publisher) *UserService {
	return &UserService{users: users, pub: pub}
}

// Get returns the account by id, or ErrNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// Update applies the patch. A changed username or email must stay unique, and a new password is hashed.
func (s *UserService) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	var username, email string
	if patch.Username != nil {
		username = *patch.Username
	}
	if patch.Email != nil {
		email = *patch.Email
	}
	if err := ensureUnique(ctx, s.users, id, username, email); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "error", err)
			return nil, err
		}
		h := string(hashed)
		patch.Password = &h
	}

	u, err := s.users.UpdateUser(ctx, id, patch)
	if errors.Is(err, storage.ErrAlreadyExists) {
		logger.Log.Errorw("user already exists", "id", id, "error", err)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "error", err)
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	s.pub.Publish(ctx, EntityUser, models.OperationUpdate, id)
	return u, nil
}

// Delete removes the account. An athlete profile of the user is not deleted.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return deleteAndPublish(ctx, s.pub, EntityUser, id, s.users.DeleteUser)
}

// deleteAndPublish runs a store delete, maps a missing record to ErrNotFound and publishes on success.
func deleteAndPublish(ctx context.Context, pub *Publisher, entity, id string, del func(context.Context, string) (bool, error)) error {
	ok, err := del(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete", "entity", entity, "id", id, "error", err)
		return err
	}
	if !ok {
		return ErrNotFound
	}
	pub.Publish(ctx, entity, models.OperationDelete, id)
	return nil
}
