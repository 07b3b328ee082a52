package store

import (
	"context"
	"fmt"
	"time"

	"leasedesk/internal/utils"
	"leasedesk/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userTableName = "leasedesk.users"

var userColumns = utils.StructTagValues(types.User{})

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// UserByKey resolves a user by either the internal id or the external
// Appwrite id; callers may pass the two interchangeably.
func (r *UserRepository) UserByKey(ctx context.Context, key string) (*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Or{sq.Eq{"id": key}, sq.Eq{"appwrite_id": key}}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user-by-key query: %w", err)
	}

	var user types.User
	err = pgxscan.Get(ctx, r.pool, &user, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) UserByEmail(ctx context.Context, email string) (*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user-by-email query: %w", err)
	}

	var user types.User
	err = pgxscan.Get(ctx, r.pool, &user, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) Users(ctx context.Context) ([]*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate users query: %w", err)
	}

	users := make([]*types.User, 0)
	err = pgxscan.Select(ctx, r.pool, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) UsersByRole(ctx context.Context, role string) ([]*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"user_role": role}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate users-by-role query: %w", err)
	}

	users := make([]*types.User, 0)
	err = pgxscan.Select(ctx, r.pool, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users by role: %w", err)
	}

	return users, nil
}

func (r *UserRepository) UsersByIDs(ctx context.Context, userIDs []string) ([]*types.User, error) {
	if len(userIDs) == 0 {
		return []*types.User{}, nil
	}

	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"id": userIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate users-by-ids query: %w", err)
	}

	var users []*types.User
	err = pgxscan.Select(ctx, r.pool, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users by ids: %w", err)
	}

	return users, nil
}

// AdminUser returns the administrative user that notification traffic is
// addressed to.
func (r *UserRepository) AdminUser(ctx context.Context) (*types.User, error) {
	query, args, err := psql().
		Select(userColumns...).
		From(userTableName).
		Where(sq.Eq{"user_role": string(types.UserRoleAdmin)}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin user query: %w", err)
	}

	var user types.User
	err = pgxscan.Get(ctx, r.pool, &user, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to fetch admin user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *types.User) error {
	if user.ID == "" {
		user.ID = utils.NanoID()
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query, args, err := psql().
		Insert(userTableName).
		SetMap(utils.StructToMap(user)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create user query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// SetAppwriteID backfills the external auth id on an existing user row.
func (r *UserRepository) SetAppwriteID(ctx context.Context, userID, appwriteID string) error {
	query, args, err := psql().
		Update(userTableName).
		Set("appwrite_id", appwriteID).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate set appwrite id query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set appwrite id: %w", err)
	}

	return nil
}
