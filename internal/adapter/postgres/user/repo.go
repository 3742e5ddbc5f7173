// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/decision-rooms/internal/adapter/postgres"
	"github.com/heartmarshall/decision-rooms/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "password_hash", "created_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"id": id})

	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "user", id, nil)
	}

	u := row.toDomain()
	return &u, nil
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"username": username})

	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil, nil)
	}

	u := row.toDomain()
	return &u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A taken username is reported as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, u.CreatedAt).
		Suffix("RETURNING id, username, password_hash, created_at")

	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, q); err != nil {
		return nil, postgres.MapError(err, "user", u.ID, postgres.ConstraintErrors{
			"users_username_key":       domain.ErrAlreadyExists,
			"users_username_not_blank": domain.ErrValidation,
		})
	}

	result := row.toDomain()
	return &result, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}
