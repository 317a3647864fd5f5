package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chat-service/internal/domain"
	"chat-service/pkg/xerrors"
)

// UserRepository stores profile documents in Postgres. It plays the document
// store role: callers address records by collection/field/id, never by SQL.
type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Queryable columns per collection. Anything else is rejected before it gets
// near a query string.
var queryableFields = map[string]map[string]bool{
	"users": {
		"username": true,
		"email":    true,
	},
}

// QueryByField reports whether no document in the collection holds the given
// field value. True means the value is free.
func (r *UserRepository) QueryByField(ctx context.Context, collection, field, value string) (bool, error) {
	allowed, ok := queryableFields[collection]
	if !ok {
		return false, fmt.Errorf("unknown collection %q", collection)
	}
	if !allowed[field] {
		return false, fmt.Errorf("field %q is not queryable in %q", field, collection)
	}

	query := fmt.Sprintf(`SELECT NOT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, collection, field)

	var empty bool
	if err := r.db.QueryRow(ctx, query, strings.TrimSpace(value)).Scan(&empty); err != nil {
		return false, fmt.Errorf("query %s by %s: %w", collection, field, err)
	}
	return empty, nil
}

// WriteDocument creates the profile document keyed by the credential's id.
// created_at is assigned by the server, not taken from the caller.
func (r *UserRepository) WriteDocument(ctx context.Context, collection, id string, fields map[string]any) error {
	if collection != "users" {
		return fmt.Errorf("unknown collection %q", collection)
	}

	query := `
		INSERT INTO users (id, name, email, username, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.db.Exec(ctx, query, id, fields["name"], fields["email"], fields["username"])
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return xerrors.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("write users/%s: %w", id, err)
	}
	return nil
}

// GetByEmail fetches a profile document for login responses.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, email, username, created_at
		FROM users
		WHERE email = $1
	`

	var u domain.User
	err := r.db.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(
		&u.ID, &u.Name, &u.Email, &u.Username, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}
