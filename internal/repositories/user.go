package repositories

import (
	"context"

	"github.com/sbilibin2017/team-manager/internal/models"
)

const userColumns = `id, username, email, password, role, full_name, profile_picture, position, created_at`

// GetUser returns the user with the given id, or nil.
func (r *PostgresStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return getOne[models.User](ctx, r.executor(ctx), query, id)
}

// GetUserByUsername returns the earliest created user with the username, or nil.
func (r *PostgresStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE username = $1
		ORDER BY created_at
		LIMIT 1
	`
	return getOne[models.User](ctx, r.executor(ctx), query, username)
}

// GetUserByEmail returns the earliest created user with the email, or nil.
func (r *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		ORDER BY created_at
		LIMIT 1
	`
	return getOne[models.User](ctx, r.executor(ctx), query, email)
}

func (r *PostgresStore) CreateUser(ctx context.Context, in models.NewUser) (*models.User, error) {
	u := models.User{
		ID:             newID(),
		Username:       in.Username,
		Email:          in.Email,
		Password:       in.Password,
		Role:           in.Role,
		FullName:       in.FullName,
		ProfilePicture: in.ProfilePicture,
		Position:       in.Position,
		CreatedAt:      models.Stamp(r.now().UTC()),
	}
	if err := r.insertUser(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresStore) insertUser(ctx context.Context, u models.User) error {
	const query = `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := execAffected(ctx, r.executor(ctx), query,
		u.ID, u.Username, u.Email, u.Password, u.Role, u.FullName, u.ProfilePicture, u.Position, u.CreatedAt)
	return mapConstraint(err)
}

// UpdateUser merges patch onto the stored row and writes it back. It returns nil when the user does not exist.
func (r *PostgresStore) UpdateUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	u, err := r.GetUser(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	u.Apply(patch)

	const query = `
		UPDATE users
		SET username = $2, email = $3, password = $4, role = $5,
		    full_name = $6, profile_picture = $7, position = $8
		WHERE id = $1
	`
	affected, err := execAffected(ctx, r.executor(ctx), query,
		u.ID, u.Username, u.Email, u.Password, u.Role, u.FullName, u.ProfilePicture, u.Position)
	if err != nil {
		return nil, mapConstraint(err)
	}
	if affected == 0 {
		return nil, nil
	}
	return u, nil
}

func (r *PostgresStore) DeleteUser(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.executor(ctx), "users", id)
}
