// Package identity is the credential side of account provisioning. It is the
// source of truth for whether a login exists; profile documents are owned
// elsewhere and written as a dependent second step.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"chat-service/pkg/utils"
	"chat-service/pkg/xerrors"
)

// Passwords shorter than this are rejected as weak at credential creation.
const minPasswordLen = 6

type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{db: db}
}

// CreateCredential registers a login and returns its generated id.
func (s *Service) CreateCredential(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if !utils.ValidateEmail(email) {
		return "", xerrors.ErrInvalidEmailFormat
	}
	if len(password) < minPasswordLen {
		return "", xerrors.ErrWeakPassword
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO credentials (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := s.db.Exec(ctx, query, id, email, hash); err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return "", xerrors.ErrEmailAlreadyInUse
		}
		return "", fmt.Errorf("create credential: %w", err)
	}

	return id, nil
}

// VerifyCredential checks a login and returns the credential id it belongs to.
func (s *Service) VerifyCredential(ctx context.Context, email, password string) (string, error) {
	query := `
		SELECT id, password_hash
		FROM credentials
		WHERE email = $1
	`

	var id, hash string
	err := s.db.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", xerrors.ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup credential: %w", err)
	}

	if !utils.CheckPasswordHash(password, hash) {
		return "", xerrors.ErrInvalidCredentials
	}
	return id, nil
}
