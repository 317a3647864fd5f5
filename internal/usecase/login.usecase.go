package usecase

import (
	"context"
	"log"

	"chat-service/internal/domain"
	"chat-service/pkg/xerrors"
)

// Route the client is sent to after a successful login.
const routeAfterLogin = "Chat"

// CredentialVerifier checks a login against the identity provider.
type CredentialVerifier interface {
	VerifyCredential(ctx context.Context, email, password string) (string, error)
}

// ProfileReader fetches the profile document behind a credential.
type ProfileReader interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenSigner issues session tokens.
type TokenSigner interface {
	Sign(userID, username string) (string, error)
}

// SessionStore persists issued sessions.
type SessionStore interface {
	Save(ctx context.Context, userID, token string) error
}

type LoginUsecase struct {
	identity CredentialVerifier
	profiles ProfileReader
	signer   TokenSigner
	sessions SessionStore
}

func NewLoginUsecase(identity CredentialVerifier, profiles ProfileReader, signer TokenSigner, sessions SessionStore) *LoginUsecase {
	return &LoginUsecase{
		identity: identity,
		profiles: profiles,
		signer:   signer,
		sessions: sessions,
	}
}

type LoginResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
	Route string       `json:"route"`
}

// Login verifies a credential, loads the profile behind it, and opens a
// session. All verification failures collapse to ErrInvalidCredentials.
func (uc *LoginUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" {
		return nil, xerrors.ErrEmailRequired
	}
	if password == "" {
		return nil, xerrors.ErrPasswordRequired
	}

	credID, err := uc.identity.VerifyCredential(ctx, email, password)
	if err != nil {
		return nil, xerrors.ErrInvalidCredentials
	}

	user, err := uc.profiles.GetByEmail(ctx, email)
	if err != nil {
		// A credential with no profile document is an orphan from a failed
		// second provisioning phase. It cannot log in.
		log.Printf("[WARN] credential %s has no profile document: %v", credID, err)
		return nil, xerrors.ErrInvalidCredentials
	}

	token, err := uc.signer.Sign(user.ID, user.Username)
	if err != nil {
		return nil, xerrors.ErrInternalServer
	}
	if err := uc.sessions.Save(ctx, user.ID, token); err != nil {
		return nil, xerrors.ErrInternalServer
	}

	return &LoginResult{User: user, Token: token, Route: routeAfterLogin}, nil
}
