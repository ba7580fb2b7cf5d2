package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/models"
	"github.com/sbilibin2017/team-manager/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID string, role models.Role) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users    storage.UserStore
	athletes storage.AthleteStore
	jwt      JWTGenerator
	pub      *Publisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users storage.UserStore, athletes storage.AthleteStore, jwt JWTGenerator, pub *Publisher) *AuthService {
	return &AuthService{
		users:    users,
		athletes: athletes,
		jwt:      jwt,
		pub:      pub,
	}
}

// Register creates an account with a hashed password. Athletes also get an empty performance profile.
func (svc *AuthService) Register(ctx context.Context, in models.NewUser) (*models.User, error) {
	if err := ensureUnique(ctx, svc.users, "", in.Username, in.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}
	in.Password = string(hashedPassword)

	user, err := svc.users.CreateUser(ctx, in)
	if errors.Is(err, storage.ErrAlreadyExists) {
		logger.Log.Errorw("user already exists", "username", in.Username, "err", err)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	svc.pub.Publish(ctx, EntityUser, models.OperationCreate, user.ID)

	if user.Role == models.RoleAthlete {
		athlete, err := svc.athletes.CreateAthlete(ctx, models.NewAthlete{UserID: user.ID})
		if err != nil {
			logger.Log.Errorw("failed to create athlete profile", "user_id", user.ID, "err", err)
			return nil, err
		}
		svc.pub.Publish(ctx, EntityAthlete, models.OperationCreate, athlete.ID)
	}

	return user, nil
}

// Login authenticates a user and returns a JWT token along with the account.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := svc.users.GetUserByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", nil, ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Me returns the account behind an authenticated request.
func (svc *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := svc.users.GetUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ensureUnique fails with ErrUserAlreadyExists when another account (not selfID) holds the username or email.
// Empty values are not checked.
func ensureUnique(ctx context.Context, users storage.UserStore, selfID, username, email string) error {
	if username != "" {
		u, err := users.GetUserByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to check user exists", "err", err)
			return err
		}
		if u != nil && u.ID != selfID {
			logger.Log.Errorw("user already exists", "username", username)
			return ErrUserAlreadyExists
		}
	}
	if email != "" {
		u, err := users.GetUserByEmail(ctx, email)
		if err != nil {
			logger.Log.Errorw("failed to check user exists", "err", err)
			return err
		}
		if u != nil && u.ID != selfID {
			logger.Log.Errorw("user already exists", "email", email)
			return ErrUserAlreadyExists
		}
	}
	return nil
}
