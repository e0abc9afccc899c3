package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/sporthub/internal/app/models"
	"github.com/yigit/sporthub/internal/pkg/logger"
)

var userColumns = []string{"user_id", "username", "email", "password", "role", "created_at"}

// PgUserRepository handles user database operations
type PgUserRepository struct {
	pgRepository
}

// NewUserRepository creates a new PgUserRepository
func NewUserRepository(db DBTX) *PgUserRepository {
	return &PgUserRepository{pgRepository: newPgRepository(db, Options{})}
}

// Create inserts the user and returns its id. A duplicate username or email
// surfaces as the driver's unique violation.
func (r *PgUserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	role := user.Role
	if role == "" {
		role = models.RoleUser
	}
	q := r.sb.Insert("users").
		Columns("username", "email", "password", "role").
		Values(user.Username, user.Email, user.Password, string(role))
	return r.insertReturningID(ctx, q, "user_id", "user")
}

func (r *PgUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"user_id": id})
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"email": email})
}

func (r *PgUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username})
}

func (r *PgUserRepository) getBy(ctx context.Context, pred squirrel.Eq) (*models.User, error) {
	q := r.sb.Select(userColumns...).From("users").Where(pred)
	return selectOne[models.User](ctx, r.db, q, "user")
}

// UsernameExists checks if a user with the given username exists
func (r *PgUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"username": username})
}

// EmailExists checks if a user with the given email exists
func (r *PgUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"email": email})
}

func (r *PgUserRepository) exists(ctx context.Context, pred squirrel.Eq) (bool, error) {
	sql, args, err := r.sb.Select("1").From("users").Where(pred).Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building user exists SQL")
		return false, fmt.Errorf("failed to build user exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
